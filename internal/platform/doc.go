package platform

// Package platform contains OS and external tooling glue: source reference
// classification, tool and output directory resolution, filename
// sanitization, directory helpers, OS folder reveal, and a native playlist
// enumerator that does not need the yt-dlp binary.
