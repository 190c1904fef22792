package model

import (
	"fmt"
	"strings"
)

// EncodingTarget is the requested output audio format
type EncodingTarget string

const (
	// EncodingMP3 is lossy MP3 at the highest quality setting (320 kbps)
	EncodingMP3 EncodingTarget = "mp3"

	// EncodingFLAC is lossless FLAC
	EncodingFLAC EncodingTarget = "flac"
)

// Conversion settings handed to the extraction tool
const (
	BestAudioQuality = "0"
)

// String returns the string representation of EncodingTarget
func (e EncodingTarget) String() string {
	return string(e)
}

// Extension returns the file extension produced for this target, without dot
func (e EncodingTarget) Extension() string {
	return string(e)
}

// IsLossless returns true for lossless targets
func (e EncodingTarget) IsLossless() bool {
	return e == EncodingFLAC
}

// Quality returns the audio quality selector, or "" when the tool default applies
func (e EncodingTarget) Quality() string {
	if e == EncodingMP3 {
		return BestAudioQuality
	}
	return ""
}

// Label returns a human-friendly name for menus and usage output
func (e EncodingTarget) Label() string {
	switch e {
	case EncodingMP3:
		return "MP3 (320 kbps)"
	case EncodingFLAC:
		return "FLAC (lossless)"
	default:
		return string(e)
	}
}

// EncodingTargets returns all supported targets in display order
func EncodingTargets() []EncodingTarget {
	return []EncodingTarget{EncodingMP3, EncodingFLAC}
}

// ParseEncodingTarget converts user input into an EncodingTarget
func ParseEncodingTarget(value string) (EncodingTarget, error) {
	switch EncodingTarget(strings.ToLower(strings.TrimSpace(value))) {
	case EncodingMP3:
		return EncodingMP3, nil
	case EncodingFLAC:
		return EncodingFLAC, nil
	default:
		return "", fmt.Errorf("unsupported format %q: supported formats are mp3, flac", value)
	}
}
