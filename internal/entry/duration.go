package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedDuration is returned when a duration token does not follow the
// <number><unit> grammar, e.g. "1:30h", "90m", "5400s" or "1.5h".
var ErrMalformedDuration = errors.New("malformed duration token")

// tokenPattern matches a single duration token: digits, dots or colons followed by a unit
var tokenPattern = regexp.MustCompile(`^([\d,.:]+)(m|h|s)$`)

var (
	sixty      = decimal.NewFromInt(60)
	secsPerHr  = decimal.NewFromInt(3600)
	hourPlaces = int32(4)
)

// ParseDuration converts one duration token into decimal hours rounded to 4 places.
// "H:MM" prefixes are read as hours and minutes.
// Valid inputs: "1:30h" (1.5), "90m" (1.5), "5400s" (1.5), "2h" (2)
func ParseDuration(token string) (decimal.Decimal, error) {
	matches := tokenPattern.FindStringSubmatch(token)
	if matches == nil {
		return decimal.Zero, fmt.Errorf("%w: %q (expected e.g. 1h, 30m, 1:30h, 45s)", ErrMalformedDuration, token)
	}

	num, err := parseNumber(matches[1])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformedDuration, token, err)
	}

	switch matches[2] {
	case "m":
		num = num.Div(sixty)
	case "s":
		num = num.Div(secsPerHr)
	}

	return num.RoundBank(hourPlaces), nil
}

// parseNumber reads a plain number or an H:MM pair
func parseNumber(s string) (decimal.Decimal, error) {
	hours, minutes, hasColon := strings.Cut(s, ":")
	if !hasColon {
		return decimal.NewFromString(s)
	}

	// Anything after a second colon is ignored: "1:30:15" is 1h30m.
	minutes, _, _ = strings.Cut(minutes, ":")

	h, err := decimal.NewFromString(hours)
	if err != nil {
		return decimal.Zero, err
	}
	m, err := decimal.NewFromString(minutes)
	if err != nil {
		return decimal.Zero, err
	}
	return h.Add(m.Div(sixty)), nil
}

// Durations is the decoded form of a composite duration field
type Durations struct {
	Tokens []decimal.Decimal
	Sum    decimal.Decimal
}

// Splits returns the per-token hours joined by spaces, e.g. "1.0 0.5"
func (d Durations) Splits() string {
	parts := make([]string, len(d.Tokens))
	for i, t := range d.Tokens {
		parts[i] = FormatHours(t)
	}
	return strings.Join(parts, " ")
}

// Total returns the summed hours as text, e.g. "1.5". Empty when the field held no tokens.
func (d Durations) Total() string {
	if len(d.Tokens) == 0 {
		return ""
	}
	return FormatHours(d.Sum)
}

// isFieldSeparator reports whether r separates tokens inside a duration field
func isFieldSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', ';':
		return true
	}
	return false
}

// ParseDurations decodes a duration field holding one or more tokens separated by
// commas, semicolons or whitespace, e.g. "1h, 30m" or "1:30h;15m 45s".
// An empty field yields an empty Durations with no error.
func ParseDurations(field string) (Durations, error) {
	var d Durations
	d.Sum = decimal.Zero

	for _, token := range strings.FieldsFunc(field, isFieldSeparator) {
		hours, err := ParseDuration(token)
		if err != nil {
			return Durations{}, err
		}
		d.Tokens = append(d.Tokens, hours)
		d.Sum = d.Sum.Add(hours)
	}

	d.Sum = d.Sum.RoundBank(hourPlaces)
	return d, nil
}

// FormatHours renders hours the way they appear in report cells:
// trailing zeros trimmed but always with a decimal point ("1.5", "2.0", "0.0003").
func FormatHours(h decimal.Decimal) string {
	s := h.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
