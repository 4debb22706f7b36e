// Package report assembles parsed log rows into CSV-ready tables and gathers
// the rows of many daily logs into collections.
package report

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xolan/acme/internal/entry"
	"github.com/xolan/acme/internal/module"
)

// TotalLabel is the description cell of the footer row
const TotalLabel = "Total Logged Hours"

// HeaderRow returns the default report header
func HeaderRow() []string {
	return []string{"Date", "Duration", "Description", "Hours", "Splits"}
}

// Options controls how rows are assembled into a table
type Options struct {
	Header        bool
	Footer        bool
	ModuleOptions string // comma-separated module options, e.g. "cat" or "categorize.columns"
}

// DefaultOptions returns header and footer enabled with no module options
func DefaultOptions() Options {
	return Options{Header: true, Footer: true}
}

// Assembler turns rows into report tables, running module options on the result
type Assembler struct {
	registry *module.Registry
	logger   *slog.Logger
}

// NewAssembler creates an Assembler that resolves module options against registry.
// A nil registry resolves nothing.
func NewAssembler(registry *module.Registry) *Assembler {
	return &Assembler{registry: registry, logger: slog.Default()}
}

// WithLogger returns a copy of the assembler that logs to l
func (a *Assembler) WithLogger(l *slog.Logger) *Assembler {
	cp := *a
	cp.logger = l
	return &cp
}

// Total sums the Hours of rows rounded to 2 places. Non-numeric hours count as zero.
// The text form is "0" when no row carried a number.
func Total(rows []entry.Row) (decimal.Decimal, string) {
	sum := decimal.Zero
	numeric := false
	for _, r := range rows {
		h, err := decimal.NewFromString(r.Hours)
		if err != nil {
			continue
		}
		sum = sum.Add(h)
		numeric = true
	}

	sum = sum.RoundBank(2)
	if !numeric {
		return sum, "0"
	}
	return sum, entry.FormatHours(sum)
}

// FooterRow returns the total row for rows
func FooterRow(rows []entry.Row) []string {
	total, text := Total(rows)
	return []string{"", entry.HumanHours(total, true), TotalLabel, text, ""}
}

// Assemble builds the report table: optional header, one line per row, optional
// total, then each module option in the order given. Options naming an unknown
// module, or one without column support, are skipped with a warning.
func (a *Assembler) Assemble(rows []entry.Row, opts Options) [][]string {
	table := make([][]string, 0, len(rows)+2)
	if opts.Header {
		table = append(table, HeaderRow())
	}
	for _, r := range rows {
		table = append(table, r.Cells())
	}
	if opts.Footer {
		table = append(table, FooterRow(rows))
	}

	resolved := a.resolveOptions(opts.ModuleOptions)
	for _, o := range resolved.options {
		table = o.optioner.Options(table, module.Meta{
			ModuleOptions: resolved.full,
			Option:        o.option,
			Header:        opts.Header,
			Footer:        opts.Footer,
			Logger:        a.logger,
		})
	}
	return table
}

type resolvedOption struct {
	optioner module.Optioner
	option   string // with the module name in place of a nickname
}

type resolvedOptions struct {
	full    string
	options []resolvedOption
}

// resolveOptions maps each "module[.option]" token to a registered module
func (a *Assembler) resolveOptions(raw string) resolvedOptions {
	var out resolvedOptions
	if strings.TrimSpace(raw) == "" {
		return out
	}

	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		key, rest, namespaced := strings.Cut(token, ".")
		m, ok := a.registry.Resolve(key)
		if !ok {
			a.logger.Warn("unknown module option, skipping", "option", token)
			tokens = append(tokens, token)
			continue
		}

		option := m.Name()
		if namespaced {
			option += "." + rest
		}
		tokens = append(tokens, option)

		optioner, ok := m.(module.Optioner)
		if !ok {
			a.logger.Warn("module has no report options, skipping", "module", m.Name(), "option", token)
			continue
		}
		out.options = append(out.options, resolvedOption{optioner: optioner, option: option})
	}

	out.full = strings.Join(tokens, ",")
	return out
}
