package extract

// Package extract drives the yt-dlp binary through github.com/lrstanley/go-ytdlp.
// It exposes two operations: extract-and-convert of a single item with a
// progress stream, and metadata-only enumeration of a playlist.
