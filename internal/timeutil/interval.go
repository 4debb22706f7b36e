package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInterval is returned for interval arguments that are not "from,to[,separator]"
// or whose dates cannot be resolved.
var ErrInvalidInterval = errors.New("invalid interval")

// IntervalUsage describes the accepted interval formats
const IntervalUsage = "Please enter valid intervals in the following formats: {from},{to} or {from},{to},{separator}.\n" +
	"Valid examples:  1/1,1/7   1/1,1/7,-to-   1-15,1-30   2024-01-15,01-30,_   01/01,01/07,_through_"

// DefaultSeparator joins the from and to dates in interval filenames
const DefaultSeparator = "_"

// illegalSeparatorChars are stripped from user supplied separators
const illegalSeparatorChars = `/:*?<>|#`

// IntervalSpec is a from/to date pair with the separator used in its filename
type IntervalSpec struct {
	From      DateSpec
	To        DateSpec
	Separator string
}

// IsInterval reports whether a date argument should be parsed as an interval
func IsInterval(input string) bool {
	return strings.Contains(input, ",")
}

// ParseInterval parses input relative to the current local time
func ParseInterval(input string) (IntervalSpec, error) {
	return ParseIntervalAt(input, time.Now())
}

// ParseIntervalAt parses "from,to" or "from,to,separator" relative to now.
// Both dates accept anything ParseDateInputAt does.
func ParseIntervalAt(input string, now time.Time) (IntervalSpec, error) {
	parts := strings.Split(input, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return IntervalSpec{}, fmt.Errorf("%w: expected 2 or 3 comma-separated parts, got %d", ErrInvalidInterval, len(parts))
	}

	iv := IntervalSpec{
		From:      ParseDateInputAt(parts[0], now),
		To:        ParseDateInputAt(parts[1], now),
		Separator: DefaultSeparator,
	}
	if len(parts) == 3 {
		iv.Separator = sanitizeSeparator(parts[2])
	}

	if !iv.From.IsValid() {
		return IntervalSpec{}, fmt.Errorf("%w: unrecognized from date %q", ErrInvalidInterval, iv.From.Input)
	}
	if !iv.To.IsValid() {
		return IntervalSpec{}, fmt.Errorf("%w: unrecognized to date %q", ErrInvalidInterval, iv.To.Input)
	}
	return iv, nil
}

func sanitizeSeparator(sep string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegalSeparatorChars, r) {
			return -1
		}
		return r
	}, sep)
}

// FileStem returns the collection filename without extension.
// The to date drops its year when both dates share one: "2024-01-01_01-07".
func (iv IntervalSpec) FileStem() string {
	to := iv.To.Dash
	if iv.From.Each.Y == iv.To.Each.Y {
		if short := strings.TrimPrefix(to, iv.To.Each.Y+"-"); short != to {
			to = short
		}
	}
	return iv.From.Dash + iv.Separator + to
}

// Days returns every calendar day from the start of From to the end of To.
// Month and year dates cover all of their days.
func (iv IntervalSpec) Days(loc *time.Location) ([]time.Time, error) {
	first, _, err := iv.From.Bounds(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	_, last, err := iv.To.Bounds(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if last.Before(first) {
		return nil, fmt.Errorf("%w: %s ends before %s", ErrInvalidInterval, iv.To.Dash, iv.From.Dash)
	}
	return DaysBetween(first, last), nil
}
