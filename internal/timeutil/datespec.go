package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Granularity is the calendar unit a DateSpec refers to
type Granularity int

const (
	GranularityNone Granularity = iota
	GranularityDay
	GranularityMonth
	GranularityYear
)

// String returns the granularity as a lowercase word
func (g Granularity) String() string {
	switch g {
	case GranularityDay:
		return "day"
	case GranularityMonth:
		return "month"
	case GranularityYear:
		return "year"
	}
	return "none"
}

// Each holds the zero-padded date components. M and D are empty for coarser dates.
type Each struct {
	Y string
	M string
	D string
}

// DateSpec is the canonical form of a date input token.
// A DateSpec whose Dash is empty did not match any known shape.
type DateSpec struct {
	Input   string // trimmed input
	Format  string // matched shape such as "MM/DD" or "M-D-YY", or "keyword"
	Dash    string // 2024-01-15, 2024-01 or 2024
	Slash   string // 2024/01/15, 2024/01 or 2024
	Log     string // log filename candidate, Slash + ".txt"
	Keyword string // today, yesterday, month or year
	Each    Each
}

// IsValid reports whether the input resolved to a date
func (d DateSpec) IsValid() bool {
	return d.Dash != ""
}

// Granularity returns day, month or year depending on which components are present
func (d DateSpec) Granularity() Granularity {
	switch {
	case !d.IsValid():
		return GranularityNone
	case d.Each.M == "":
		return GranularityYear
	case d.Each.D == "":
		return GranularityMonth
	}
	return GranularityDay
}

// Bounds returns the first and last calendar day the spec covers.
// Fails if the components do not form a real date (e.g. 02/31 or month 13).
func (d DateSpec) Bounds(loc *time.Location) (first, last time.Time, err error) {
	g := d.Granularity()
	if g == GranularityNone {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date input %q", d.Input)
	}

	year, err := strconv.Atoi(d.Each.Y)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid year in %q: %w", d.Input, err)
	}
	if g == GranularityYear {
		first = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(1, 0, -1), nil
	}

	month, err := strconv.Atoi(d.Each.M)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month in %q", d.Input)
	}
	if g == GranularityMonth {
		first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, -1), nil
	}

	day, err := strconv.Atoi(d.Each.D)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid day in %q", d.Input)
	}
	first = time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if first.Day() != day || int(first.Month()) != month {
		return time.Time{}, time.Time{}, fmt.Errorf("%s is not a calendar date", d.Dash)
	}
	return first, first, nil
}

// Shift returns the dash form of the day, month or year n units away from d
func (d DateSpec) Shift(n int) (string, error) {
	first, _, err := d.Bounds(time.UTC)
	if err != nil {
		return "", err
	}
	switch d.Granularity() {
	case GranularityDay:
		return first.AddDate(0, 0, n).Format("2006-01-02"), nil
	case GranularityMonth:
		return first.AddDate(0, n, 0).Format("2006-01"), nil
	}
	return first.AddDate(n, 0, 0).Format("2006"), nil
}

// shape is one positional date form such as "MM/DD/YY"
type shape struct {
	form    string
	pattern *regexp.Regexp
}

func newShape(form string) shape {
	parts := strings.Split(form, "/")
	exprs := make([]string, len(parts))
	for i, p := range parts {
		exprs[i] = fmt.Sprintf(`\d{%d}`, len(p))
	}
	return shape{form: form, pattern: regexp.MustCompile("^" + strings.Join(exprs, "/") + "$")}
}

// shapes are tried in order; the first match wins
var shapes = []shape{
	newShape("M/D"),
	newShape("MM/D"),
	newShape("M/DD"),
	newShape("MM/DD"),

	newShape("MM/YYYY"),
	newShape("M/YYYY"),

	newShape("M/D/YY"),
	newShape("MM/D/YY"),
	newShape("M/DD/YY"),
	newShape("MM/DD/YY"),

	newShape("M/D/YYYY"),
	newShape("MM/D/YYYY"),
	newShape("M/DD/YYYY"),
	newShape("MM/DD/YYYY"),

	newShape("YYYY/MM/DD"),
	newShape("YYYY/MM/D"),
	newShape("YYYY/M/DD"),
	newShape("YYYY/M/D"),

	newShape("YYYY/MM"),
	newShape("YYYY/M"),

	newShape("YYYY"),
}

// dateInputPattern matches tokens the lookup command treats as dates
var dateInputPattern = regexp.MustCompile(`^(\d{4}|(\d{1,4}[-/]\d{1,4}([-/]\d{1,4})?)|tod(ay)?|-t|yest(erday)?|-y)$`)

// IsDateInput reports whether input looks like a date or a day keyword
func IsDateInput(input string) bool {
	return dateInputPattern.MatchString(input)
}

// ParseDateInput parses input relative to the current local time
func ParseDateInput(input string) DateSpec {
	return ParseDateInputAt(input, time.Now())
}

// ParseDateInputAt parses a date token or keyword relative to now.
// Missing years default to now's year, two-digit years expand to 1969-2068.
// Dash-separated input is accepted wherever slashes are; the format keeps the dash.
// Unrecognized input returns a DateSpec with only Input set.
//
// Valid inputs:
//   - "today", "tod", "-t", "yesterday", "yest", "-y"
//   - "month", "mon", "-m", "year", "yr", "-yr"
//   - "1/5", "01-05", "1/5/24", "2024/01/05", "2024-01", "2024"
func ParseDateInputAt(input string, now time.Time) DateSpec {
	input = strings.TrimSpace(input)
	spec := DateSpec{Input: input}

	switch input {
	case "today", "tod", "-t":
		return keywordSpec(spec, "today", now, GranularityDay)
	case "yesterday", "yest", "-y":
		return keywordSpec(spec, "yesterday", now.AddDate(0, 0, -1), GranularityDay)
	case "month", "mon", "-m":
		return keywordSpec(spec, "month", now, GranularityMonth)
	case "year", "yr", "-yr":
		return keywordSpec(spec, "year", now, GranularityYear)
	}

	dashed := strings.Contains(input, "-")
	normalized := strings.ReplaceAll(input, "-", "/")

	for _, s := range shapes {
		if !s.pattern.MatchString(normalized) {
			continue
		}

		var each Each
		values := strings.Split(normalized, "/")
		for i, part := range strings.Split(s.form, "/") {
			switch part[0] {
			case 'Y':
				each.Y = values[i]
			case 'M':
				each.M = values[i]
			case 'D':
				each.D = values[i]
			}
		}

		switch len(each.Y) {
		case 0:
			each.Y = strconv.Itoa(now.Year())
		case 2:
			each.Y = expandYear(each.Y)
		}
		each.M = zeroPad(each.M)
		each.D = zeroPad(each.D)

		spec.Format = s.form
		if dashed {
			spec.Format = strings.ReplaceAll(s.form, "/", "-")
		}
		spec.Each = each
		spec.Dash = joinNonEmpty("-", each.Y, each.M, each.D)
		spec.Slash = joinNonEmpty("/", each.Y, each.M, each.D)
		spec.Log = spec.Slash + ".txt"
		return spec
	}

	return spec
}

func keywordSpec(spec DateSpec, keyword string, t time.Time, g Granularity) DateSpec {
	each := Each{Y: t.Format("2006"), M: t.Format("01"), D: t.Format("02")}
	switch g {
	case GranularityMonth:
		each.D = ""
	case GranularityYear:
		each.M, each.D = "", ""
	}

	spec.Format = "keyword"
	spec.Keyword = keyword
	spec.Each = each
	spec.Dash = joinNonEmpty("-", each.Y, each.M, each.D)
	spec.Slash = joinNonEmpty("/", each.Y, each.M, each.D)
	spec.Log = spec.Slash + ".txt"
	return spec
}

// expandYear applies the POSIX %y window: 69-99 -> 19xx, 00-68 -> 20xx
func expandYear(yy string) string {
	n, _ := strconv.Atoi(yy)
	if n >= 69 {
		return strconv.Itoa(1900 + n)
	}
	return strconv.Itoa(2000 + n)
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
