package logging

// Package logging builds the zerolog logger used across the application,
// writing human-readable lines to the console and JSON to an optional
// rotating file.
