package download

// Package download implements the download orchestrator. It validates the
// request, runs single-item extraction through an Extractor, and processes
// playlists sequentially with per-item failure isolation and progress
// snapshots for the caller.
