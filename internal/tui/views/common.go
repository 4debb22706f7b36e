package views

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xolan/acme/internal/cli"
	"github.com/xolan/acme/internal/service"
	"github.com/xolan/acme/internal/tui/ui"
)

// ReportLoadedMsg carries a freshly built report to the views that display it
type ReportLoadedMsg struct {
	Input   string
	Result  *service.ReportResult
	Summary service.SummaryResult
	Err     error
}

// maxCellWidth caps the width of a report table column
const maxCellWidth = 48

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

func formatHours(h decimal.Decimal) string {
	return cli.FormatHours(h)
}

func countOf(n int, word string) string {
	return fmt.Sprintf("%d %s", n, cli.Pluralize(word, n))
}
