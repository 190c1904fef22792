package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-audio/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if dir := settings.GetOutputDirectory(); dir != "" {
		t.Errorf("Expected no saved directory, got %s", dir)
	}

	// Test setting custom value
	customDir := t.TempDir()
	settings.SetOutputDirectory(customDir)
	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}

	// A directory removed since it was saved is forgotten
	settings.SetOutputDirectory(filepath.Join(customDir, "gone"))
	if got := settings.GetOutputDirectory(); got != "" {
		t.Errorf("Expected stale directory to be dropped, got %s", got)
	}
	if app.Preferences().String(KeyOutputDir) != "" {
		t.Error("Stale directory should be removed from preferences")
	}
}

func TestEncoding(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if enc := settings.GetEncoding(); enc != DefaultEncoding {
		t.Errorf("Expected default encoding %s, got %s", DefaultEncoding, enc)
	}

	settings.SetEncoding(model.EncodingFLAC)
	if enc := settings.GetEncoding(); enc != model.EncodingFLAC {
		t.Errorf("Expected encoding %s, got %s", model.EncodingFLAC, enc)
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyEncoding, "wav")
	if enc := settings.GetEncoding(); enc != DefaultEncoding {
		t.Errorf("Expected fallback to %s, got %s", DefaultEncoding, enc)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
