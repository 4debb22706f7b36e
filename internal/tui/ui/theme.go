package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// BuiltinTheme is the name shown for the built-in palette
const BuiltinTheme = "builtin"

// ThemeProvider resolves the configured theme name to styles. An empty name or
// BuiltinTheme selects DefaultStyles; any other name is a bubbletint id.
type ThemeProvider struct {
	registry *tint.Registry
	themed   bool
}

// NewThemeProvider creates a provider for name. Unknown names fall back to the built-in palette.
func NewThemeProvider(name string) *ThemeProvider {
	tints := tint.DefaultTints()
	tp := &ThemeProvider{registry: tint.NewRegistry(tints[0], tints...)}
	tp.SetTheme(name)
	return tp
}

// SetTheme switches to name and reports whether it was known
func (tp *ThemeProvider) SetTheme(name string) bool {
	if name == "" || name == BuiltinTheme {
		tp.themed = false
		return true
	}
	if !tp.registry.SetTintID(name) {
		return false
	}
	tp.themed = true
	return true
}

// Current returns the id of the active theme, BuiltinTheme when none is set
func (tp *ThemeProvider) Current() string {
	if !tp.themed {
		return BuiltinTheme
	}
	return tp.registry.ID()
}

// ConfigValue returns the value to store in the theme config key
func (tp *ThemeProvider) ConfigValue() string {
	if !tp.themed {
		return ""
	}
	return tp.registry.ID()
}

// Themes returns BuiltinTheme followed by every bubbletint id, sorted
func (tp *ThemeProvider) Themes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return append([]string{BuiltinTheme}, ids...)
}

// Styles returns the styles of the active theme
func (tp *ThemeProvider) Styles() Styles {
	if !tp.themed {
		return DefaultStyles()
	}
	return NewStylesFromRegistry(tp.registry)
}
