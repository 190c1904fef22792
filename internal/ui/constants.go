package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	PlaylistItemFormat  = "%d/%d %s"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 320

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)
