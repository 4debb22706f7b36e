// Package stats analyzes a logs directory: it classifies log filenames and
// summarizes hours across report rows.
package stats

import (
	pathpkg "path"
	"regexp"

	"github.com/xolan/acme/internal/storage"
)

// Pattern identifies which naming rule a log file matched
type Pattern int

const (
	PatternNone      Pattern = iota
	PatternDay               // YYYY/MM/DD.txt
	PatternDayCustom         // YYYY/MM/DD<custom>.txt
	PatternMonthYMD          // YYYY/MM/YYYY-MM-DD<custom>.txt, shadowed by PatternDayCustom
	PatternYearYMD           // YYYY/YYYY-MM-DD<custom>.txt
)

var (
	dayPattern       = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})\.txt$`)
	dayCustomPattern = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})(.+)\.txt$`)
	monthYMDPattern  = regexp.MustCompile(`^\d{4}/\d{2}/(\d{4})-(\d{2})-(\d{2})(.+)\.txt$`)
	yearYMDPattern   = regexp.MustCompile(`^\d{4}/(\d{4})-(\d{2})-(\d{2})(.+)\.txt$`)

	// embeddedYMD finds a YYYY-MM-DD date at the start of a file name
	embeddedYMD = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

var rules = []struct {
	pattern *regexp.Regexp
	kind    Pattern
	ymd     bool
}{
	{dayPattern, PatternDay, false},
	{dayCustomPattern, PatternDayCustom, false},
	{monthYMDPattern, PatternMonthYMD, true},
	{yearYMDPattern, PatternYearYMD, true},
}

// Classification describes one file under the logs directory
type Classification struct {
	Path       string // slash-separated, relative to the logs directory
	Pattern    Pattern
	Valid      bool
	Custom     bool   // has text between the date and .txt
	CustomText string // e.g. "-gym" in 2024/01/15-gym.txt
	YMD        bool   // matched one of the explicit YYYY-MM-DD rules
	Year       string
	Month      string
	Day        string
}

// Date returns the file's date as YYYY-MM-DD, empty for invalid files
func (c Classification) Date() string {
	if !c.Valid {
		return ""
	}
	return c.Year + "-" + c.Month + "-" + c.Day
}

// Classify matches a relative log path against the naming rules, first
// match wins. The rule decides the flags only: a name such as
// 2024/01/2024-01-15-gym.txt matches DD<custom> and counts as a custom
// name, while its date is still read from the embedded YYYY-MM-DD.
func Classify(path string) Classification {
	c := Classification{Path: path}

	for _, rule := range rules {
		m := rule.pattern.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		c.Pattern = rule.kind
		c.Valid = true
		c.YMD = rule.ymd
		if len(m) > 4 {
			c.CustomText = m[4]
		}
		c.Custom = c.CustomText != ""
		c.Year, c.Month, c.Day = fileDate(path, m)
		return c
	}

	return c
}

// fileDate returns the date a matched log file holds. Names starting with
// YYYY-MM-DD carry their own date, others take it from the YYYY/MM/DD path.
func fileDate(path string, m []string) (year, month, day string) {
	if d := embeddedYMD.FindStringSubmatch(pathpkg.Base(path)); d != nil {
		return d[1], d[2], d[3]
	}
	return m[1], m[2], m[3]
}

// Analysis is the result of classifying every file under a logs directory
type Analysis struct {
	Root  string
	Files []Classification
}

// Analyze classifies every non-hidden file under root. Read-only.
func Analyze(root string) (Analysis, error) {
	paths, err := storage.ListFiles(root)
	if err != nil {
		return Analysis{Root: root}, err
	}

	a := Analysis{Root: root, Files: make([]Classification, 0, len(paths))}
	for _, p := range paths {
		a.Files = append(a.Files, Classify(p))
	}
	return a, nil
}

func (a Analysis) filter(keep func(Classification) bool) []Classification {
	out := []Classification{}
	for _, c := range a.Files {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// Total returns the number of files found
func (a Analysis) Total() int { return len(a.Files) }

// Valid returns files matching one of the naming rules
func (a Analysis) Valid() []Classification {
	return a.filter(func(c Classification) bool { return c.Valid })
}

// Custom returns valid files with custom name suffixes
func (a Analysis) Custom() []Classification {
	return a.filter(func(c Classification) bool { return c.Custom })
}

// YMD returns valid files named with an explicit YYYY-MM-DD date
func (a Analysis) YMD() []Classification {
	return a.filter(func(c Classification) bool { return c.YMD })
}

// Invalid returns files that match no naming rule and are ignored
func (a Analysis) Invalid() []Classification {
	return a.filter(func(c Classification) bool { return !c.Valid })
}

// ForDate returns the valid files dated ymd (YYYY-MM-DD)
func (a Analysis) ForDate(ymd string) []Classification {
	return a.filter(func(c Classification) bool { return c.Valid && c.Date() == ymd })
}
