package ui

import (
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Language codes
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
)

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyOpenFolder         = "open_folder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOutputDirectory    = "output_directory"
	KeyFormat             = "format"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyReset              = "reset"
	KeyEnterURL           = "enter_url"
	KeySettingsSaved      = "settings_saved"
	KeyHintSingle         = "hint_single"
	KeyHintCollection     = "hint_collection"
	KeyHintInvalid        = "hint_invalid"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyToolMissing        = "tool_missing"
	KeyDownloading        = "downloading"
	KeyDownloadCompleted  = "download_completed"
	KeyDownloadFailed     = "download_failed"
	KeyPlaylistSummary    = "playlist_summary"
	KeyPlaylistFailed     = "playlist_failed"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyFolderNotFound     = "folder_not_found"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the closest
// supported match for the OS locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = MatchLanguage(systemLocale())
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// supportedLanguages lists translations in matcher preference order
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage maps a BCP 47 locale (e.g., "pt-BR") to a supported language
// code, defaulting to English
func MatchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEnglish
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return LanguageEnglish
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT Audio",
		KeyDownload:           "Download",
		KeyOpenFolder:         "Open folder",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOutputDirectory:    "Output folder",
		KeyFormat:             "Format",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyReset:              "Reset",
		KeyEnterURL:           "Enter YouTube video or playlist URL",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyHintSingle:         "Single video",
		KeyHintCollection:     "Playlist",
		KeyHintInvalid:        "Not a recognized YouTube URL",
		KeyPleaseEnterURL:     "Please enter a URL",
		KeyToolMissing:        "Required tool not found: %s",
		KeyDownloading:        "Downloading...",
		KeyDownloadCompleted:  "Saved to %s",
		KeyDownloadFailed:     "Download failed: %s",
		KeyPlaylistSummary:    "Downloaded %d of %d",
		KeyPlaylistFailed:     "Could not read the playlist",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyFolderNotFound:     "Folder does not exist: %s",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT Аудио",
		KeyDownload:           "Скачать",
		KeyOpenFolder:         "Открыть папку",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyOutputDirectory:    "Папка сохранения",
		KeyFormat:             "Формат",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyReset:              "Сбросить",
		KeyEnterURL:           "Введите URL видео или плейлиста YouTube",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyHintSingle:         "Одно видео",
		KeyHintCollection:     "Плейлист",
		KeyHintInvalid:        "Неизвестный формат URL YouTube",
		KeyPleaseEnterURL:     "Пожалуйста, введите URL",
		KeyToolMissing:        "Не найден инструмент: %s",
		KeyDownloading:        "Загрузка...",
		KeyDownloadCompleted:  "Сохранено в %s",
		KeyDownloadFailed:     "Ошибка загрузки: %s",
		KeyPlaylistSummary:    "Скачано %d из %d",
		KeyPlaylistFailed:     "Не удалось прочитать плейлист",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyFolderNotFound:     "Папка не существует: %s",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT Audio",
		KeyDownload:           "Baixar",
		KeyOpenFolder:         "Abrir pasta",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyOutputDirectory:    "Pasta de saída",
		KeyFormat:             "Formato",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyReset:              "Redefinir",
		KeyEnterURL:           "Digite a URL do vídeo ou playlist do YouTube",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyHintSingle:         "Vídeo único",
		KeyHintCollection:     "Playlist",
		KeyHintInvalid:        "URL do YouTube não reconhecida",
		KeyPleaseEnterURL:     "Por favor, digite uma URL",
		KeyToolMissing:        "Ferramenta não encontrada: %s",
		KeyDownloading:        "Baixando...",
		KeyDownloadCompleted:  "Salvo em %s",
		KeyDownloadFailed:     "Falha no download: %s",
		KeyPlaylistSummary:    "Baixados %d de %d",
		KeyPlaylistFailed:     "Não foi possível ler a playlist",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyFolderNotFound:     "A pasta não existe: %s",
	}
}
