package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

type fakeLocator struct {
	dir     string
	toolsOK bool
	missing string
}

func (f *fakeLocator) ValidateTools() (bool, string) { return f.toolsOK, f.missing }
func (f *fakeLocator) ToolPath(name string) string {
	return filepath.Join(f.dir, platform.ToolsDirName, name)
}
func (f *fakeLocator) OutputDirectory() string      { return f.dir }
func (f *fakeLocator) EnsureOutputDirectory() error { return nil }

type fakeDownloads struct {
	outcome model.DownloadOutcome
	result  model.BatchResult
	calls   []string
	encs    []model.EncodingTarget
}

func (f *fakeDownloads) DownloadSingle(_ context.Context, ref string, enc model.EncodingTarget, onProgress model.ProgressFunc) (model.DownloadOutcome, error) {
	f.calls = append(f.calls, "single")
	f.encs = append(f.encs, enc)
	onProgress(model.ProgressUpdate{Percent: 30})
	onProgress(model.ProgressUpdate{Percent: 60})
	return f.outcome, nil
}

func (f *fakeDownloads) DownloadCollection(_ context.Context, ref string, enc model.EncodingTarget, onProgress model.BatchProgressFunc) (model.BatchResult, error) {
	f.calls = append(f.calls, "collection")
	f.encs = append(f.encs, enc)
	onProgress(model.BatchProgress{Phase: model.BatchPhaseFetching, Status: "Fetching playlist..."})
	onProgress(model.BatchProgress{Index: 1, Total: 2, Title: "One", Phase: model.BatchPhaseDownloading})
	return f.result, nil
}

func execute(t *testing.T, locator *fakeLocator, downloads *fakeDownloads, args ...string) (string, error) {
	t.Helper()
	factory := func(cfg *config.Config, _ io.Writer, _ bool) *environment {
		return &environment{config: cfg, locator: locator, downloads: downloads}
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(factory, &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRootCommand_Single(t *testing.T) {
	dir := t.TempDir()
	downloads := &fakeDownloads{outcome: model.Succeeded(filepath.Join(dir, "Song.mp3"))}

	out, err := execute(t, &fakeLocator{dir: dir, toolsOK: true}, downloads, "https://www.youtube.com/watch?v=abc123", "mp3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(downloads.calls) != 1 || downloads.calls[0] != "single" || downloads.encs[0] != model.EncodingMP3 {
		t.Errorf("unexpected calls %v %v", downloads.calls, downloads.encs)
	}
	if !strings.Contains(out, "Saved: "+filepath.Join(dir, "Song.mp3")) {
		t.Errorf("Expected saved line, got %q", out)
	}
	if !strings.Contains(out, "30.0%") || !strings.Contains(out, "60.0%") {
		t.Errorf("Expected progress output, got %q", out)
	}
}

func TestRootCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		toolsOK  bool
		contains string
	}{
		{"bad format", []string{"https://youtu.be/abc123", "ogg"}, true, "unsupported format"},
		{"bad url", []string{"https://example.com/a", "mp3"}, true, "invalid YouTube URL"},
		{"missing tool", []string{"https://youtu.be/abc123", "flac"}, false, "expected location"},
		{"wrong arg count", []string{"https://youtu.be/abc123"}, true, "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloads := &fakeDownloads{}
			_, err := execute(t, &fakeLocator{dir: t.TempDir(), toolsOK: tt.toolsOK, missing: "yt-dlp"}, downloads, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error containing %q, got %v", tt.contains, err)
			}
			if len(downloads.calls) != 0 {
				t.Error("no download may start")
			}
		})
	}
}

func TestRootCommand_SingleFailure(t *testing.T) {
	downloads := &fakeDownloads{outcome: model.Failed("ERROR: Video unavailable")}
	_, err := execute(t, &fakeLocator{dir: t.TempDir(), toolsOK: true}, downloads, "download", "https://youtu.be/abc123")
	if err == nil || !strings.Contains(err.Error(), "Video unavailable") {
		t.Errorf("Expected diagnostic error, got %v", err)
	}
	if downloads.encs[0] != model.EncodingMP3 {
		t.Errorf("Expected configured default encoding, got %s", downloads.encs[0])
	}
}

func TestDownloadCommand_Collection(t *testing.T) {
	dir := t.TempDir()
	downloads := &fakeDownloads{result: model.BatchResult{
		Title:     "Mix",
		Directory: filepath.Join(dir, "Mix"),
		Succeeded: 1,
		Total:     2,
		Failures:  []model.ItemFailure{{Index: 2, Title: "Two", Diagnostic: "ERROR: private\nmore"}},
	}}

	out, err := execute(t, &fakeLocator{dir: dir, toolsOK: true}, downloads, "download", "https://www.youtube.com/playlist?list=PL1", "flac")
	if err != nil {
		t.Fatalf("partial success should not fail: %v", err)
	}
	for _, want := range []string{"Fetching playlist...", "[1/2] One", "Mix: 1 of 2 downloaded", "ERROR: private"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "more") {
		t.Error("only the first diagnostic line belongs in the table")
	}
}

func TestDownloadCommand_CollectionNothingDownloaded(t *testing.T) {
	tests := []struct {
		name   string
		result model.BatchResult
	}{
		{"empty playlist", model.BatchResult{}},
		{"all failed", model.BatchResult{Title: "Mix", Total: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloads := &fakeDownloads{result: tt.result}
			if _, err := execute(t, &fakeLocator{dir: t.TempDir(), toolsOK: true}, downloads, "download", "https://www.youtube.com/playlist?list=PL1"); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, &fakeLocator{dir: t.TempDir(), toolsOK: false, missing: "yt-dlp"}, &fakeDownloads{}, "check")
	if err == nil {
		t.Error("Expected error when a tool is missing")
	}
	if !strings.Contains(out, "yt-dlp") || !strings.Contains(out, statusMissing) {
		t.Errorf("Expected tool table, got:\n%s", out)
	}
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, &fakeLocator{dir: t.TempDir()}, &fakeDownloads{}, "classify", "https://www.youtube.com/watch?v=abc123&list=PL9")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"collection", "PL9", "abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if _, err := execute(t, &fakeLocator{dir: t.TempDir()}, &fakeDownloads{}, "classify", "nope"); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestProgressPrinter_NonInteractive(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressPrinter(&buf, false)
	for _, pct := range []float64{1, 10, 26, 30, 51, 99, 100} {
		p.Item(model.ProgressUpdate{Percent: pct})
	}
	p.Done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Errorf("Expected one line per 25%% step, got %d:\n%s", len(lines), buf.String())
	}
}

func TestProgressPrinter_Interactive(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressPrinter(&buf, true)
	p.Item(model.ProgressUpdate{Percent: 10})
	p.Item(model.ProgressUpdate{Percent: 20})
	p.Done()

	out := buf.String()
	if strings.Count(out, "\r") != 2 || !strings.HasSuffix(out, "\n") {
		t.Errorf("Expected redrawn line ending in newline, got %q", out)
	}
}

func TestFirstLine(t *testing.T) {
	if firstLine("a\nb") != "a" || firstLine("single") != "single" || firstLine("") != "" {
		t.Error("firstLine returned unexpected value")
	}
}
