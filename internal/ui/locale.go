package ui

import (
	"fyne.io/fyne/v2/lang"
)

// systemLocale returns the OS locale as reported by Fyne
func systemLocale() string {
	return string(lang.SystemLocale())
}
