package ui

// ThemeChangeRequestMsg is sent when the user picks a theme
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// StatusMsg is a one-line result of an action, shown in the status bar
type StatusMsg struct {
	Text string
	Err  error
}
