package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/model"
)

// SettingsDialog edits the persisted preferences: default format and language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	encodingSelect *widget.Select
	languageSelect *widget.Select
	languageCodes  map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	encodingOptions := make([]string, 0, len(model.EncodingTargets()))
	for _, enc := range model.EncodingTargets() {
		encodingOptions = append(encodingOptions, enc.String())
	}
	sd.encodingSelect = widget.NewSelect(encodingOptions, nil)

	sd.languageCodes = make(map[string]string)
	languageLabels := make([]string, 0)
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageLabels = append(languageLabels, label)
	}
	sort.Strings(languageLabels)
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyFormat)+":"),
		sd.encodingSelect,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.encodingSelect.SetSelected(sd.settings.GetEncoding().String())

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if enc, err := model.ParseEncodingTarget(sd.encodingSelect.Selected); err == nil {
		sd.settings.SetEncoding(enc)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
