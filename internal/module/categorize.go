package module

import (
	"fmt"
	"strings"

	"github.com/xolan/acme/internal/csvtext"
	"github.com/xolan/acme/internal/entry"
)

// MaxCategories is the number of category columns the categorize option can add
const MaxCategories = 10

const (
	descriptionColumn = 2
	categoryColumn    = 2
)

// Categorize expands $shortcuts inside a trailing category block and, as a
// report option, moves the block's categories into C1..C10 columns.
//
//   - 1h Sync ($zoom)          ->  Sync (work, meeting, zoom)
//   - 1h Run (fitness, #5k)    ->  Run | fitness | #5k
type Categorize struct{}

func (Categorize) Name() string     { return "categorize" }
func (Categorize) Nickname() string { return "cat" }

// Apply replaces glossary shortcut keys inside the trailing category block.
// Descriptions without a block are returned unchanged.
func (Categorize) Apply(desc string, ctx Context) string {
	cb, ok := entry.SplitCategoryBlock(desc)
	if !ok {
		return desc
	}

	inside := cb.Inside
	for _, s := range ctx.Shortcuts() {
		for _, key := range s.Keys {
			if key != "" {
				inside = strings.ReplaceAll(inside, key, s.Value)
			}
		}
	}
	return cb.Rest + "(" + inside + ")"
}

// Options splits trailing category blocks out of the description column into
// category columns inserted before it. Rows without a block get empty cells.
func (Categorize) Options(rows [][]string, meta Meta) [][]string {
	if meta.Option != "categorize" && meta.Option != "categorize.columns" {
		return rows
	}

	categories := make([][]string, len(rows))
	width := 0
	for i, row := range rows {
		if len(row) <= descriptionColumn {
			continue
		}
		desc := csvtext.Unescape(row[descriptionColumn])
		if cb, ok := entry.SplitCategoryBlock(desc); ok {
			desc = strings.TrimSpace(cb.Rest)
			for _, c := range strings.Split(cb.Inside, ",") {
				categories[i] = append(categories[i], strings.TrimSpace(c))
			}
			if len(categories[i]) > MaxCategories {
				meta.Log().Warn("too many categories, extra ones dropped", "description", desc, "count", len(categories[i]))
				categories[i] = categories[i][:MaxCategories]
			}
		}
		row[descriptionColumn] = csvtext.Escape(desc)
		width = max(width, len(categories[i]))
	}

	result := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < categoryColumn {
			result = append(result, row)
			continue
		}

		cells := make([]string, width)
		for j := range cells {
			switch {
			case meta.Header && i == 0:
				cells[j] = fmt.Sprintf("C%d", j+1)
			case j < len(categories[i]):
				cells[j] = categories[i][j]
			}
		}

		widened := make([]string, 0, len(row)+width)
		widened = append(widened, row[:categoryColumn]...)
		widened = append(widened, cells...)
		widened = append(widened, row[categoryColumn:]...)
		result = append(result, widened)
	}

	meta.Log().Debug("categories applied", "rows", len(rows), "columns", width)
	return result
}
