package config

// Package config loads runtime configuration from a YAML file, a .env file and
// YTAUDIO_* environment variables, and persists GUI preferences through Fyne.
