package model

// Diagnostic used when a failure carries no message of its own
const (
	UnknownFailureDiagnostic = "download failed with no diagnostic output"
)

// DownloadOutcome is the result of one single-item flow. Exactly one of Path
// or Diagnostic is set.
type DownloadOutcome struct {
	Path       string // resolved output file on success
	Diagnostic string // human-readable failure description
}

// Succeeded builds a successful outcome carrying the output path
func Succeeded(path string) DownloadOutcome {
	return DownloadOutcome{Path: path}
}

// Failed builds a failed outcome carrying a diagnostic
func Failed(diagnostic string) DownloadOutcome {
	if diagnostic == "" {
		diagnostic = UnknownFailureDiagnostic
	}
	return DownloadOutcome{Diagnostic: diagnostic}
}

// OK returns true if the outcome is a success
func (o DownloadOutcome) OK() bool {
	return o.Diagnostic == ""
}
