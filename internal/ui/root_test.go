package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
	"github.com/ytget/yt-audio/internal/logging"
	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// fakeDownloader returns canned results
type fakeDownloader struct {
	outcome model.DownloadOutcome
	result  model.BatchResult
	err     error
	calls   []string
}

func (f *fakeDownloader) DownloadSingle(_ context.Context, ref string, _ model.EncodingTarget, onProgress model.ProgressFunc) (model.DownloadOutcome, error) {
	f.calls = append(f.calls, "single:"+ref)
	if onProgress != nil {
		onProgress(model.ProgressUpdate{Percent: 50})
	}
	return f.outcome, f.err
}

func (f *fakeDownloader) DownloadCollection(_ context.Context, ref string, _ model.EncodingTarget, onProgress model.BatchProgressFunc) (model.BatchResult, error) {
	f.calls = append(f.calls, "collection:"+ref)
	if onProgress != nil {
		onProgress(model.BatchProgress{Index: 1, Total: 2, Percent: 50, Phase: model.BatchPhaseDownloading})
	}
	return f.result, f.err
}

// fakeLocator implements OutputLocator in memory
type fakeLocator struct {
	dir      string
	custom   string
	toolsOK  bool
	missing  string
	rejected bool
}

func (f *fakeLocator) OutputDirectory() string {
	if f.custom != "" {
		return f.custom
	}
	return f.dir
}
func (f *fakeLocator) DefaultOutputDirectory() string { return f.dir }
func (f *fakeLocator) HasCustomOutputDirectory() bool { return f.custom != "" }
func (f *fakeLocator) SetOutputDirectory(path string) error {
	if path != "" && !platform.DirectoryExists(path) {
		f.rejected = true
		return errors.New("not found")
	}
	f.custom = path
	return nil
}
func (f *fakeLocator) ValidateTools() (bool, string) { return f.toolsOK, f.missing }

var _ download.Downloader = (*fakeDownloader)(nil)

func newTestUI(t *testing.T, svc *fakeDownloader, locator *fakeLocator) *RootUI {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	app.Preferences().SetString(config.KeyLanguage, LanguageEnglish)
	window := app.NewWindow("test")
	return NewRootUI(window, app, svc, locator, logging.Nop())
}

func TestPrepareDownload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		toolsOK  bool
		contains string
	}{
		{"empty", "", true, "Please enter a URL"},
		{"invalid", "https://example.com/x", true, "Not a recognized"},
		{"missing tool", "https://youtu.be/abc123", false, "yt-dlp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDownloader{}
			ui := newTestUI(t, svc, &fakeLocator{dir: t.TempDir(), toolsOK: tt.toolsOK, missing: "yt-dlp"})

			if _, _, ok := ui.prepareDownload(tt.ref); ok {
				t.Fatal("Expected download to be rejected")
			}
			if !strings.Contains(ui.statusLabel.Text, tt.contains) {
				t.Errorf("Expected status containing %q, got %q", tt.contains, ui.statusLabel.Text)
			}
			if ui.busy {
				t.Error("window must not be marked busy")
			}
		})
	}
}

func TestRunDownload_Single(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Song.mp3")
	svc := &fakeDownloader{outcome: model.Succeeded(path)}
	ui := newTestUI(t, svc, &fakeLocator{dir: dir, toolsOK: true})

	ref := "https://www.youtube.com/watch?v=abc123"
	kind, enc, ok := ui.prepareDownload(ref)
	if !ok || kind != model.ReferenceSingle {
		t.Fatalf("Expected single download to start, got ok=%v kind=%v", ok, kind)
	}
	if _, _, again := ui.prepareDownload(ref); again {
		t.Error("second download must be refused while busy")
	}

	ui.runDownload(ref, kind, enc)

	if len(svc.calls) != 1 || svc.calls[0] != "single:"+ref {
		t.Errorf("unexpected calls %v", svc.calls)
	}
	if !strings.Contains(ui.statusLabel.Text, path) {
		t.Errorf("Expected status to name %s, got %q", path, ui.statusLabel.Text)
	}
	if ui.lastFolder != dir || ui.openBtn.Disabled() || ui.busy {
		t.Errorf("unexpected final state: folder=%s open disabled=%v busy=%v", ui.lastFolder, ui.openBtn.Disabled(), ui.busy)
	}
}

func TestRunDownload_SingleFailure(t *testing.T) {
	svc := &fakeDownloader{outcome: model.Failed("ERROR: Video unavailable")}
	ui := newTestUI(t, svc, &fakeLocator{dir: t.TempDir(), toolsOK: true})

	ui.runDownload("https://youtu.be/abc123", model.ReferenceSingle, model.EncodingFLAC)

	if !strings.Contains(ui.statusLabel.Text, "Video unavailable") {
		t.Errorf("Expected diagnostic in status, got %q", ui.statusLabel.Text)
	}
	if !ui.openBtn.Disabled() {
		t.Error("open folder should stay disabled after failure")
	}
}

func TestRunDownload_Collection(t *testing.T) {
	dir := t.TempDir()
	svc := &fakeDownloader{result: model.BatchResult{Succeeded: 2, Total: 3, Directory: filepath.Join(dir, "Mix")}}
	ui := newTestUI(t, svc, &fakeLocator{dir: dir, toolsOK: true})

	ui.runDownload("https://www.youtube.com/playlist?list=XYZ", model.ReferenceCollection, model.EncodingMP3)

	if ui.statusLabel.Text != "Downloaded 2 of 3" {
		t.Errorf("unexpected summary %q", ui.statusLabel.Text)
	}
	if ui.lastFolder != filepath.Join(dir, "Mix") {
		t.Errorf("Expected playlist folder, got %s", ui.lastFolder)
	}
}

func TestRunDownload_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"missing tool", &platform.MissingToolError{Name: "ffmpeg", Path: "/x"}, "ffmpeg"},
		{"invalid reference", download.ErrInvalidReference, "Not a recognized"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeDownloader{err: tt.err}
			ui := newTestUI(t, svc, &fakeLocator{dir: t.TempDir(), toolsOK: true})

			ui.runDownload("https://www.youtube.com/playlist?list=XYZ", model.ReferenceCollection, model.EncodingMP3)
			if !strings.Contains(ui.statusLabel.Text, tt.contains) {
				t.Errorf("Expected status containing %q, got %q", tt.contains, ui.statusLabel.Text)
			}
		})
	}
}

func TestApplyOutputDirectory(t *testing.T) {
	locator := &fakeLocator{dir: t.TempDir(), toolsOK: true}
	ui := newTestUI(t, &fakeDownloader{}, locator)

	if !ui.resetBtn.Disabled() {
		t.Error("reset should be disabled without an override")
	}

	custom := t.TempDir()
	ui.applyOutputDirectory(custom)
	if ui.outputLabel.Text != custom || ui.resetBtn.Disabled() {
		t.Errorf("Expected override %s shown, got %q", custom, ui.outputLabel.Text)
	}
	if ui.settings.GetOutputDirectory() != custom {
		t.Error("override should be saved in preferences")
	}

	ui.applyOutputDirectory(filepath.Join(custom, "missing"))
	if !locator.rejected || ui.outputLabel.Text != custom {
		t.Error("missing directory should be rejected and leave the label unchanged")
	}

	ui.onResetOutput()
	if ui.outputLabel.Text != locator.dir {
		t.Errorf("Expected default %s after reset, got %q", locator.dir, ui.outputLabel.Text)
	}
}

func TestOutputDirectoryLockedWhileBusy(t *testing.T) {
	dir := t.TempDir()
	locator := &fakeLocator{dir: dir, toolsOK: true}
	svc := &fakeDownloader{result: model.BatchResult{Succeeded: 1, Total: 1, Directory: filepath.Join(dir, "Mix")}}
	ui := newTestUI(t, svc, locator)

	custom := t.TempDir()
	ui.applyOutputDirectory(custom)

	ref := "https://www.youtube.com/playlist?list=PL123"
	kind, enc, ok := ui.prepareDownload(ref)
	if !ok {
		t.Fatal("Expected download to start")
	}
	if !ui.browseBtn.Disabled() || !ui.resetBtn.Disabled() {
		t.Error("folder buttons should be disabled while busy")
	}

	chosen := t.TempDir()
	ui.applyOutputDirectory(chosen)
	ui.onResetOutput()
	if locator.custom != custom {
		t.Errorf("Expected folder %s kept during the run, got %s", custom, locator.custom)
	}
	if ui.settings.GetOutputDirectory() != custom {
		t.Errorf("Expected saved folder %s, got %s", custom, ui.settings.GetOutputDirectory())
	}

	ui.runDownload(ref, kind, enc)

	if ui.browseBtn.Disabled() || ui.resetBtn.Disabled() {
		t.Error("folder buttons should be enabled after the run")
	}
	if ui.outputLabel.Text != custom {
		t.Errorf("Expected label %s after the run, got %q", custom, ui.outputLabel.Text)
	}
}

func TestReferenceHint(t *testing.T) {
	l := NewLocalization()
	tests := []struct {
		text     string
		expected string
	}{
		{"", ""},
		{"https://youtu.be/abc123", IconMusic + " Single video"},
		{"https://www.youtube.com/watch?v=abc&list=PL1", IconMusic + " Playlist"},
		{"hello", "Not a recognized YouTube URL"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := referenceHint(l, tt.text); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatProgress(t *testing.T) {
	item := formatItemProgress(model.ProgressUpdate{Percent: 45.7, Speed: "1.2MB/s"})
	if item != "45% · 1.2MB/s · —" {
		t.Errorf("unexpected item line %q", item)
	}

	batch := formatBatchProgress(model.BatchProgress{Index: 2, Total: 5, Title: "Song", ItemPercent: 30, Phase: model.BatchPhaseDownloading})
	if batch != "2/5 Song · 30%" {
		t.Errorf("unexpected batch line %q", batch)
	}

	done := formatBatchProgress(model.BatchProgress{Phase: model.BatchPhaseCompleted, Status: "Completed: 5 of 5 downloaded"})
	if done != "Completed: 5 of 5 downloaded" {
		t.Errorf("Expected status passthrough, got %q", done)
	}
}

func TestEncodingLabels(t *testing.T) {
	for _, label := range encodingLabels() {
		enc, ok := encodingForLabel(label)
		if !ok || enc.Label() != label {
			t.Errorf("label %q does not map back", label)
		}
	}
	if _, ok := encodingForLabel("WAV"); ok {
		t.Error("unknown label should not map")
	}
}
