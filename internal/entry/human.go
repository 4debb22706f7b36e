package entry

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// HumanDuration renders decimal hours as "1h 30m" (compact) or "1 hr 30 min".
// Zero segments are omitted, so 0 renders as "". Non-numeric input renders as "".
func HumanDuration(hours string, compact bool) string {
	h, err := decimal.NewFromString(strings.TrimSpace(hours))
	if err != nil {
		return ""
	}
	return HumanHours(h, compact)
}

// HumanHours is HumanDuration for an already parsed value
func HumanHours(h decimal.Decimal, compact bool) string {
	h = h.RoundBank(2)

	whole := h.Floor()
	mins := h.Sub(whole).Mul(sixty).RoundBank(0).IntPart()
	hrs := whole.IntPart()

	var parts []string
	if compact {
		if hrs > 0 {
			parts = append(parts, fmt.Sprintf("%dh", hrs))
		}
		if mins > 0 {
			parts = append(parts, fmt.Sprintf("%dm", mins))
		}
	} else {
		if hrs > 0 {
			unit := "hrs"
			if hrs == 1 {
				unit = "hr"
			}
			parts = append(parts, fmt.Sprintf("%d %s", hrs, unit))
		}
		if mins > 0 {
			parts = append(parts, fmt.Sprintf("%d min", mins))
		}
	}
	return strings.Join(parts, " ")
}
