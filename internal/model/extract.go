package model

// ExtractRequest describes one extract-and-convert invocation of the extraction tool
type ExtractRequest struct {
	Reference string
	Encoding  EncodingTarget
	OutputDir string // directory the output template is rooted at
}

// ExtractResult is what the extraction tool reports after it exits
type ExtractResult struct {
	Success     bool
	Path        string   // output file on success
	Diagnostics []string // error lines on failure
}
