package entry

import (
	"bufio"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// linePattern matches an entry line: a leading "-" or ".", one or more duration
// tokens (e.g. "1:30h", "5m, 2.5s;"), then the description.
var linePattern = regexp.MustCompile(`^[-.](\s*(?:[\d:.]+(?:m|h|s)[\s,]*[\s;]*)+)(.*)$`)

// Transform rewrites a raw description before it is normalized
type Transform func(description string) string

// Parser turns log file contents into report rows
type Parser struct {
	transforms []Transform
	logger     *slog.Logger
}

// NewParser creates a Parser that runs the given transforms, in order, on every description
func NewParser(transforms ...Transform) *Parser {
	return &Parser{
		transforms: transforms,
		logger:     slog.Default(),
	}
}

// WithLogger returns a copy of the parser that logs to l
func (p *Parser) WithLogger(l *slog.Logger) *Parser {
	cp := *p
	cp.logger = l
	return &cp
}

// ParseResult contains the rows of one log file plus warnings for dropped lines
type ParseResult struct {
	Rows     []Row
	Warnings []ParseWarning
}

// SplitLine splits an entry line into its duration field and description.
// Returns false for lines that are not entries (blank lines, notes, headings).
func SplitLine(line string) (LogEntry, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return LogEntry{}, false
	}
	return LogEntry{RawDuration: m[1], RawDesc: m[2]}, true
}

// ParseLine parses a single entry line logged on the given date.
// ok is false when the line is not an entry. An error means the line looked like
// an entry but its duration field was malformed.
func (p *Parser) ParseLine(line string, date time.Time) (row Row, ok bool, err error) {
	le, ok := SplitLine(line)
	if !ok {
		return Row{}, false, nil
	}

	desc := le.RawDesc
	for _, t := range p.transforms {
		desc = t(desc)
	}

	durations, err := ParseDurations(le.RawDuration)
	if err != nil {
		return Row{}, true, err
	}

	total := durations.Total()
	row = Row{
		Date:        date.Format("01/02/2006"),
		Duration:    HumanDuration(total, true),
		Description: NormalizeDescription(desc),
		Hours:       total,
	}
	if len(durations.Tokens) > 1 {
		row.Splits = durations.Splits()
	}
	return row, true, nil
}

// Parse parses the contents of the log file for ymd (YYYY-MM-DD).
// Non-entry lines are skipped silently; entries with malformed durations are
// dropped and reported as warnings.
func (p *Parser) Parse(contents, ymd string) (ParseResult, error) {
	result := ParseResult{Rows: []Row{}}

	date, err := time.Parse("2006-01-02", ymd)
	if err != nil {
		return result, fmt.Errorf("invalid log date %q: %w", ymd, err)
	}

	scanner := bufio.NewScanner(strings.NewReader(contents))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")

		row, ok, err := p.ParseLine(line, date)
		if err != nil {
			p.logger.Debug("dropping entry", "date", ymd, "line", lineNumber, "error", err)
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    line,
				Error:      err.Error(),
			})
			continue
		}
		if ok {
			result.Rows = append(result.Rows, row)
		}
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}
	return result, nil
}
