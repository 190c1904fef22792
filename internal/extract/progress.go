package extract

import (
	"fmt"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-audio/internal/model"
)

// Download state reported by yt-dlp while bytes are transferred
const (
	StatusDownloading = "downloading"
)

// progressSample is the subset of a yt-dlp progress update the tracker needs
type progressSample struct {
	status     string
	downloaded float64
	total      float64
	started    time.Time
	eta        time.Duration
	filename   string
}

// sampleFromUpdate converts a go-ytdlp progress update
func sampleFromUpdate(update ytdlp.ProgressUpdate) progressSample {
	return progressSample{
		status:     string(update.Status),
		downloaded: float64(update.DownloadedBytes),
		total:      float64(update.TotalBytes),
		started:    update.Started,
		eta:        update.ETA(),
		filename:   update.Filename,
	}
}

// progressTracker coalesces raw samples into ProgressUpdates. Only
// downloading samples with a positive percentage are forwarded, and never
// one lower than the last forwarded value.
type progressTracker struct {
	mu          sync.Mutex
	onProgress  model.ProgressFunc
	lastPercent float64
	lastFile    string
	now         func() time.Time
}

func newProgressTracker(onProgress model.ProgressFunc) *progressTracker {
	return &progressTracker{onProgress: onProgress, now: time.Now}
}

// observe records a sample and forwards it when it qualifies
func (t *progressTracker) observe(s progressSample) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s.filename != "" {
		t.lastFile = s.filename
	}
	if s.status != StatusDownloading || s.total <= 0 {
		return
	}

	percent := s.downloaded / s.total * 100
	if percent > 100 {
		percent = 100
	}
	if percent <= 0 || percent < t.lastPercent {
		return
	}
	t.lastPercent = percent

	if t.onProgress == nil {
		return
	}
	t.onProgress(model.ProgressUpdate{
		Percent: percent,
		Speed:   t.speed(s),
		ETA:     s.eta,
	})
}

// speed formats the average transfer rate since the download started
func (t *progressTracker) speed(s progressSample) string {
	if s.started.IsZero() {
		return ""
	}
	elapsed := t.now().Sub(s.started).Seconds()
	if elapsed <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1fMB/s", s.downloaded/elapsed/1024/1024)
}

// filename returns the last file yt-dlp reported writing
func (t *progressTracker) filename() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastFile
}
