package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"App", styles.App},
		{"TabBar", styles.TabBar},
		{"TabActive", styles.TabActive},
		{"TabInactive", styles.TabInactive},
		{"Content", styles.Content},
		{"ViewTitle", styles.ViewTitle},
		{"Period", styles.Period},
		{"StatusBar", styles.StatusBar},
		{"StatusKey", styles.StatusKey},
		{"StatusValue", styles.StatusValue},
		{"StatusHelp", styles.StatusHelp},
		{"TableHeader", styles.TableHeader},
		{"TableCell", styles.TableCell},
		{"TableSelected", styles.TableSelected},
		{"Hours", styles.Hours},
		{"StatLabel", styles.StatLabel},
		{"StatValue", styles.StatValue},
		{"Category", styles.Category},
		{"Hashtag", styles.Hashtag},
		{"ListSelected", styles.ListSelected},
		{"Dialog", styles.Dialog},
		{"DialogTitle", styles.DialogTitle},
		{"Error", styles.Error},
		{"Warning", styles.Warning},
		{"Success", styles.Success},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.style.Render("test"), "test") {
				t.Errorf("expected rendered output of %s to contain the text", tt.name)
			}
		})
	}
}

func TestStyles_Layout(t *testing.T) {
	styles := DefaultStyles()

	if styles.App.GetPaddingTop() != 1 || styles.App.GetPaddingLeft() != 2 {
		t.Error("expected App style to pad the browser")
	}
	if styles.Hours.GetWidth() != 10 {
		t.Errorf("expected hours column width 10, got %d", styles.Hours.GetWidth())
	}
	if !styles.TabActive.GetBold() {
		t.Error("expected active tab to be bold")
	}
}
