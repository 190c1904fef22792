package model

// BatchPhase represents the stage a collection run is in
type BatchPhase string

const (
	// BatchPhaseFetching means collection metadata is being enumerated
	BatchPhaseFetching BatchPhase = "Fetching"

	// BatchPhaseDownloading means items are being processed
	BatchPhaseDownloading BatchPhase = "Downloading"

	// BatchPhaseCompleted means every item was attempted
	BatchPhaseCompleted BatchPhase = "Completed"

	// BatchPhaseFailed means enumeration failed or returned no entries
	BatchPhaseFailed BatchPhase = "Failed"
)

// String returns the string representation of BatchPhase
func (p BatchPhase) String() string {
	return string(p)
}

// IsActive returns true while the run still has work to do
func (p BatchPhase) IsActive() bool {
	return p == BatchPhaseFetching || p == BatchPhaseDownloading
}

// IsFinished returns true for terminal phases (completed or failed)
func (p BatchPhase) IsFinished() bool {
	return p == BatchPhaseCompleted || p == BatchPhaseFailed
}
