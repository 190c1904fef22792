package ui

import "testing"

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"en-US", "en"},
		{"ru-RU", "ru"},
		{"ru", "ru"},
		{"pt-BR", "pt"},
		{"pt-PT", "pt"},
		{"ja-JP", "en"},
		{"", "en"},
		{"not a locale!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := MatchLanguage(tt.locale); got != tt.expected {
				t.Errorf("MatchLanguage(%q) = %q, expected %q", tt.locale, got, tt.expected)
			}
		})
	}
}

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	if l.GetCurrentLanguage() != LanguageEnglish {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("ru")
	if l.GetText(KeyDownload) != "Скачать" {
		t.Errorf("unexpected Russian text %q", l.GetText(KeyDownload))
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_Complete(t *testing.T) {
	l := NewLocalization()
	english := l.texts[LanguageEnglish]
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("missing translations for %s", code)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("%s is missing key %s", code, key)
			}
		}
	}
}
