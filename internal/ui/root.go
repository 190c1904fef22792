package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/download"
	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

// OutputLocator is the part of the resolver the window configures
type OutputLocator interface {
	OutputDirectory() string
	DefaultOutputDirectory() string
	HasCustomOutputDirectory() bool
	SetOutputDirectory(path string) error
	ValidateTools() (bool, string)
}

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	downloadSvc  download.Downloader
	locator      OutputLocator
	settings     *config.Settings
	localization *Localization
	logger       zerolog.Logger

	urlEntry    *widget.Entry
	hintLabel   *widget.Label
	formatRadio *widget.RadioGroup
	outputLabel *widget.Label
	browseBtn   *widget.Button
	resetBtn    *widget.Button
	downloadBtn *widget.Button
	openBtn     *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	mu         sync.Mutex
	busy       bool
	lastFolder string
}

// NewRootUI creates and initializes the main window
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, locator OutputLocator, logger zerolog.Logger) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		downloadSvc:  downloadSvc,
		locator:      locator,
		settings:     settings,
		localization: localization,
		logger:       logger.With().Str("component", "ui").Logger(),
	}

	if dir := settings.GetOutputDirectory(); dir != "" {
		if err := locator.SetOutputDirectory(dir); err != nil {
			ui.logger.Warn().Err(err).Msg("saved output directory rejected")
			settings.SetOutputDirectory("")
		}
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = func(text string) {
		ui.hintLabel.SetText(referenceHint(ui.localization, text))
	}
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}
	ui.hintLabel = widget.NewLabel("")

	ui.formatRadio = widget.NewRadioGroup(encodingLabels(), nil)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.SetSelected(ui.settings.GetEncoding().Label())
	ui.formatRadio.OnChanged = func(label string) {
		if enc, ok := encodingForLabel(label); ok {
			ui.settings.SetEncoding(enc)
		}
	}

	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Truncation = fyne.TextTruncateEllipsis
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseOutput)
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onResetOutput)
	ui.refreshOutputLabel()

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	ui.openBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	urlRow := container.NewBorder(nil, nil, settingsBtn, ui.downloadBtn, ui.urlEntry)
	outputRow := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyOutputDirectory)+":"),
		container.NewHBox(ui.browseBtn, ui.resetBtn),
		ui.outputLabel,
	)
	formatRow := container.NewHBox(widget.NewLabel(ui.localization.GetText(KeyFormat)+":"), ui.formatRadio)

	content := container.NewVBox(
		urlRow,
		ui.hintLabel,
		formatRow,
		outputRow,
		widget.NewSeparator(),
		ui.progressBar,
		ui.statusLabel,
		container.NewHBox(ui.openBtn),
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the language; labels built at startup update on restart
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.openBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenFolder))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
	ui.hintLabel.SetText(referenceHint(ui.localization, ui.urlEntry.Text))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.formatRadio.SetSelected(ui.settings.GetEncoding().Label())
		ui.refreshUITexts()
		ui.createMenu()
		ui.setStatus(ui.localization.GetText(KeySettingsSaved))
	}).Show()
}

// onBrowseOutput lets the user pick the output folder
func (ui *RootUI) onBrowseOutput() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.applyOutputDirectory(uri.Path())
	}, ui.window)
}

// onResetOutput returns to the default output folder
func (ui *RootUI) onResetOutput() {
	ui.applyOutputDirectory("")
}

// applyOutputDirectory updates the resolver and the saved preference. The
// folder cannot change while a download is running.
func (ui *RootUI) applyOutputDirectory(dir string) {
	ui.mu.Lock()
	busy := ui.busy
	ui.mu.Unlock()
	if busy {
		return
	}

	if err := ui.locator.SetOutputDirectory(dir); err != nil {
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyFolderNotFound), dir))
		return
	}
	ui.settings.SetOutputDirectory(dir)
	ui.refreshOutputLabel()
}

// refreshOutputLabel shows the effective output folder
func (ui *RootUI) refreshOutputLabel() {
	ui.outputLabel.SetText(ui.locator.OutputDirectory())
	if ui.locator.HasCustomOutputDirectory() {
		ui.resetBtn.Enable()
	} else {
		ui.resetBtn.Disable()
	}
}

// onDownloadClick validates input and starts the download in the background
func (ui *RootUI) onDownloadClick() {
	ref := strings.TrimSpace(ui.urlEntry.Text)
	kind, enc, ok := ui.prepareDownload(ref)
	if !ok {
		return
	}
	go ui.runDownload(ref, kind, enc)
}

// prepareDownload checks the reference and tools and marks the window busy
func (ui *RootUI) prepareDownload(ref string) (model.ReferenceKind, model.EncodingTarget, bool) {
	if ref == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterURL))
		return model.ReferenceInvalid, "", false
	}

	kind := platform.Classify(ref)
	if !kind.IsValid() {
		ui.setStatus(ui.localization.GetText(KeyHintInvalid))
		return kind, "", false
	}

	if ok, missing := ui.locator.ValidateTools(); !ok {
		ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeyToolMissing), missing))
		return kind, "", false
	}

	ui.mu.Lock()
	if ui.busy {
		ui.mu.Unlock()
		return kind, "", false
	}
	ui.busy = true
	ui.mu.Unlock()

	enc, ok := encodingForLabel(ui.formatRadio.Selected)
	if !ok {
		enc = ui.settings.GetEncoding()
	}

	ui.downloadBtn.Disable()
	ui.openBtn.Disable()
	ui.browseBtn.Disable()
	ui.resetBtn.Disable()
	ui.progressBar.SetValue(0)
	ui.setStatus(ui.localization.GetText(KeyDownloading))
	return kind, enc, true
}

// runDownload performs the download and reports back on the UI thread
func (ui *RootUI) runDownload(ref string, kind model.ReferenceKind, enc model.EncodingTarget) {
	ctx := context.Background()
	var status, folder string

	switch kind {
	case model.ReferenceCollection:
		result, err := ui.downloadSvc.DownloadCollection(ctx, ref, enc, func(p model.BatchProgress) {
			fyne.Do(func() {
				ui.progressBar.SetValue(p.Percent / 100)
				ui.statusLabel.SetText(formatBatchProgress(p))
			})
		})
		switch {
		case err != nil:
			status = ui.describeError(err)
		case result.Total == 0:
			status = ui.localization.GetText(KeyPlaylistFailed)
		default:
			status = fmt.Sprintf(ui.localization.GetText(KeyPlaylistSummary), result.Succeeded, result.Total)
			folder = result.Directory
		}

	default:
		outcome, err := ui.downloadSvc.DownloadSingle(ctx, ref, enc, func(u model.ProgressUpdate) {
			fyne.Do(func() {
				ui.progressBar.SetValue(u.Percent / 100)
				ui.statusLabel.SetText(formatItemProgress(u))
			})
		})
		switch {
		case err != nil:
			status = ui.describeError(err)
		case outcome.OK():
			status = fmt.Sprintf(ui.localization.GetText(KeyDownloadCompleted), outcome.Path)
			folder = filepath.Dir(outcome.Path)
		default:
			status = fmt.Sprintf(ui.localization.GetText(KeyDownloadFailed), outcome.Diagnostic)
		}
	}

	ui.logger.Info().Str("reference", ref).Str("status", status).Msg("download finished")

	fyne.Do(func() {
		ui.finishDownload(status, folder)
	})
}

// finishDownload resets the busy state and enables the open-folder button
func (ui *RootUI) finishDownload(status, folder string) {
	ui.mu.Lock()
	ui.busy = false
	ui.lastFolder = folder
	ui.mu.Unlock()

	if folder != "" {
		ui.progressBar.SetValue(1)
		ui.openBtn.Enable()
	}
	ui.downloadBtn.Enable()
	ui.browseBtn.Enable()
	ui.refreshOutputLabel()
	ui.statusLabel.SetText(status)
}

// onOpenFolder opens the folder of the last completed download
func (ui *RootUI) onOpenFolder() {
	ui.mu.Lock()
	folder := ui.lastFolder
	ui.mu.Unlock()
	if folder == "" {
		folder = ui.locator.OutputDirectory()
	}

	if err := platform.OpenDirectory(folder); err != nil {
		ui.logger.Warn().Err(err).Str("folder", folder).Msg("open folder failed")
		ui.setStatus(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// describeError renders an orchestrator error for the status line
func (ui *RootUI) describeError(err error) string {
	var toolErr *platform.MissingToolError
	if errors.As(err, &toolErr) {
		return fmt.Sprintf(ui.localization.GetText(KeyToolMissing), toolErr.Name)
	}
	if errors.Is(err, download.ErrInvalidReference) {
		return ui.localization.GetText(KeyHintInvalid)
	}
	return fmt.Sprintf(ui.localization.GetText(KeyDownloadFailed), err.Error())
}

// setStatus sets the status line
func (ui *RootUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}

// referenceHint describes how the entered text will be handled
func referenceHint(l *Localization, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	switch platform.Classify(text) {
	case model.ReferenceSingle:
		return IconMusic + " " + l.GetText(KeyHintSingle)
	case model.ReferenceCollection:
		return IconMusic + " " + l.GetText(KeyHintCollection)
	default:
		return l.GetText(KeyHintInvalid)
	}
}

// formatItemProgress renders "45% · 1.2MB/s · 00:30"
func formatItemProgress(u model.ProgressUpdate) string {
	return strings.Join([]string{
		fmt.Sprintf(ProgressLabelFormat, int(u.Percent)),
		u.SpeedString(),
		u.ETAString(),
	}, MiddleDotSeparator)
}

// formatBatchProgress renders the playlist position with the item percentage
func formatBatchProgress(p model.BatchProgress) string {
	if p.Phase != model.BatchPhaseDownloading {
		return p.Status
	}
	line := fmt.Sprintf(PlaylistItemFormat, p.Index, p.Total, p.Title)
	if p.ItemPercent > 0 {
		line += MiddleDotSeparator + fmt.Sprintf(ProgressLabelFormat, int(p.ItemPercent))
	}
	return line
}

// encodingLabels returns the radio labels in display order
func encodingLabels() []string {
	targets := model.EncodingTargets()
	labels := make([]string, 0, len(targets))
	for _, enc := range targets {
		labels = append(labels, enc.Label())
	}
	return labels
}

// encodingForLabel maps a radio label back to its target
func encodingForLabel(label string) (model.EncodingTarget, bool) {
	for _, enc := range model.EncodingTargets() {
		if enc.Label() == label {
			return enc, true
		}
	}
	return "", false
}
