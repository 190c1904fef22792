package app

// Package app wires configuration, logging, the tool resolver, the yt-dlp
// client and the download service into one graph shared by the console and
// desktop front ends.
