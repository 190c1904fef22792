package model

import (
	"fmt"
	"time"
)

// ProgressUpdate is one coalesced progress event for a single item
type ProgressUpdate struct {
	Percent float64       // 0 to 100
	Speed   string        // human readable transfer rate (e.g., "1.2MB/s"), "" if unknown
	ETA     time.Duration // estimated time remaining, 0 if unknown
}

// ProgressFunc receives single-item progress updates
type ProgressFunc func(ProgressUpdate)

// ETAString returns ETA formatted as hh:mm:ss or mm:ss, or "—" if unknown
func (p ProgressUpdate) ETAString() string {
	secs := int(p.ETA.Seconds())
	if secs <= 0 {
		return "—"
	}

	hours := secs / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// SpeedString returns the transfer rate or "—" if unknown
func (p ProgressUpdate) SpeedString() string {
	if p.Speed == "" {
		return "—"
	}
	return p.Speed
}
