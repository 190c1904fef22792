package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/logging"
	"github.com/ytget/yt-audio/internal/platform"
)

func TestNew(t *testing.T) {
	root := t.TempDir()
	tools := t.TempDir()
	for _, tool := range []string{platform.ExtractionTool, platform.ConversionTool} {
		if err := os.WriteFile(filepath.Join(tools, platform.ExecutableName(tool)), nil, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	output := t.TempDir()

	cfg := config.Defaults()
	cfg.RootDir = root
	cfg.ToolsDir = tools
	cfg.OutputDir = output

	a := New(cfg, logging.Nop())

	if a.Resolver.OutputDirectory() != output {
		t.Errorf("Expected output directory %s, got %s", output, a.Resolver.OutputDirectory())
	}
	if a.Resolver.DefaultOutputDirectory() != filepath.Join(root, platform.DownloadsDirName) {
		t.Errorf("unexpected default output directory %s", a.Resolver.DefaultOutputDirectory())
	}
	if ok, missing := a.Resolver.ValidateTools(); !ok {
		t.Errorf("Expected tools from %s, missing %s", tools, missing)
	}
	if a.Downloads == nil || a.Extractor == nil {
		t.Error("Expected services to be wired")
	}
}

func TestNew_InvalidOutputDirectory(t *testing.T) {
	cfg := config.Defaults()
	cfg.RootDir = t.TempDir()
	cfg.OutputDir = filepath.Join(cfg.RootDir, "missing")
	cfg.Enumerator = config.EnumeratorNative

	a := New(cfg, logging.Nop())
	if a.Resolver.HasCustomOutputDirectory() {
		t.Error("missing output directory should fall back to the default")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Defaults()
	cfg.Log.Level = "debug"

	logger := NewLogger(cfg, &buf)
	logger.Debug().Msg("hello")
	if buf.Len() == 0 {
		t.Error("Expected console output")
	}
}
