package model

// BatchProgress is an immutable snapshot emitted during collection processing
type BatchProgress struct {
	Index       int        // current item, 1-based; 0 before enumeration
	Total       int        // item count; 0 before enumeration
	Title       string     // current item display title
	Percent     float64    // overall completion 0 to 100, non-decreasing within a run
	ItemPercent float64    // current item download percentage 0 to 100
	Phase       BatchPhase // run stage
	Status      string     // free-text status line
}

// BatchProgressFunc receives batch progress snapshots
type BatchProgressFunc func(BatchProgress)

// ItemFailure records why one collection item did not produce a file
type ItemFailure struct {
	Index      int
	Title      string
	Reference  string
	Diagnostic string
}

// BatchResult is the final outcome of a collection flow
type BatchResult struct {
	RunID     string
	Title     string // collection display title
	Directory string // per-run subdirectory, "" if none was created
	Succeeded int
	Total     int
	Failures  []ItemFailure
}

// Failed returns the number of items that did not succeed
func (r BatchResult) Failed() int {
	return r.Total - r.Succeeded
}

// AllSucceeded returns true when every attempted item succeeded
func (r BatchResult) AllSucceeded() bool {
	return r.Total > 0 && r.Succeeded == r.Total
}

// OverallPercent returns index/total as a percentage, 0 when total is 0
func OverallPercent(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index) / float64(total) * 100
}
