// Package module provides the pluggable description and column modules applied
// while building reports, resolved from a static registry.
package module

import (
	"log/slog"
	"slices"

	"github.com/xolan/acme/internal/entry"
)

// Shortcut expands any of Keys into Value inside a category block
type Shortcut struct {
	Keys  []string `toml:"keys"`
	Value string   `toml:"value"`
}

// WordReplacement replaces the whole word From with To, ignoring case
type WordReplacement struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Glossary holds the user definitions modules draw on
type Glossary struct {
	Shortcuts []Shortcut        `toml:"shortcuts"`
	Words     []WordReplacement `toml:"words"`
}

// Context is the read-only glossary shared by every module during one run
type Context struct {
	shortcuts []Shortcut
	words     []WordReplacement
}

// NewContext copies g into a Context
func NewContext(g Glossary) Context {
	ctx := Context{
		shortcuts: make([]Shortcut, len(g.Shortcuts)),
		words:     slices.Clone(g.Words),
	}
	for i, s := range g.Shortcuts {
		ctx.shortcuts[i] = Shortcut{Keys: slices.Clone(s.Keys), Value: s.Value}
	}
	return ctx
}

// Shortcuts returns the shortcut definitions in glossary order
func (c Context) Shortcuts() []Shortcut {
	out := make([]Shortcut, len(c.shortcuts))
	for i, s := range c.shortcuts {
		out[i] = Shortcut{Keys: slices.Clone(s.Keys), Value: s.Value}
	}
	return out
}

// Words returns the word replacements in glossary order
func (c Context) Words() []WordReplacement {
	return slices.Clone(c.words)
}

// Module rewrites entry descriptions before they are normalized
type Module interface {
	// Name is the registry key used in configuration and module options
	Name() string
	// Nickname is a short alias accepted in module options, may be empty
	Nickname() string
	// Apply must be safe to chain with other modules
	Apply(description string, ctx Context) string
}

// Meta describes the module option being applied to a report
type Meta struct {
	ModuleOptions string // full option string with nicknames resolved
	Option        string // this option, e.g. "categorize" or "categorize.columns"
	Header        bool   // first row is the header
	Footer        bool   // last row is the total
	Logger        *slog.Logger
}

// Log returns the logger for diagnostics, the default logger when unset
func (m Meta) Log() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

// Optioner is implemented by modules that restructure finished report rows
type Optioner interface {
	Options(rows [][]string, meta Meta) [][]string
}

// Transforms binds the modules' Apply functions to ctx, in order
func Transforms(mods []Module, ctx Context) []entry.Transform {
	transforms := make([]entry.Transform, 0, len(mods))
	for _, m := range mods {
		transforms = append(transforms, func(desc string) string {
			return m.Apply(desc, ctx)
		})
	}
	return transforms
}
