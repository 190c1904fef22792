package ui

// Package ui contains the Fyne-based desktop front end. It classifies the
// entered URL, lets the user pick the encoding and output folder, and runs
// single or playlist downloads through the download service. All UI strings
// are localized via Localization.
