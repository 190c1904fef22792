package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir = "output_directory"
	KeyEncoding  = "audio_encoding"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages persisted GUI preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the saved output directory if it still exists,
// or "" so the resolver default applies
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir != "" && !platform.DirectoryExists(dir) {
		s.SetOutputDirectory("")
		return ""
	}
	return dir
}

// SetOutputDirectory saves the output directory; "" clears it
func (s *Settings) SetOutputDirectory(dir string) {
	if dir == "" {
		s.app.Preferences().RemoveValue(KeyOutputDir)
		return
	}
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetEncoding returns the preferred encoding target
func (s *Settings) GetEncoding() model.EncodingTarget {
	enc, err := model.ParseEncodingTarget(s.app.Preferences().String(KeyEncoding))
	if err != nil {
		s.SetEncoding(DefaultEncoding)
		return DefaultEncoding
	}
	return enc
}

// SetEncoding sets the preferred encoding target
func (s *Settings) SetEncoding(enc model.EncodingTarget) {
	s.app.Preferences().SetString(KeyEncoding, enc.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
