package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxPostLength is the feed's character limit used for preview warnings.
const MaxPostLength = 280

// PreviewItem is one rendered announcement.
type PreviewItem struct {
	Index int
	Type  string
	Text  string
}

// PreviewStats are the counters printed under the announcements.
type PreviewStats struct {
	Processed int
	Skipped   int
	Unmatched int
}

// RenderPreview formats announcements for display. Plain mode emits no
// escape sequences so output can be piped or diffed.
func RenderPreview(items []PreviewItem, stats PreviewStats, mode Mode) string {
	var b strings.Builder

	if mode == ModeStyled {
		b.WriteString(TitleStyle.Render(fmt.Sprintf("%d announcement(s) would be posted", len(items))))
	} else {
		fmt.Fprintf(&b, "%d announcement(s) would be posted", len(items))
	}
	b.WriteString("\n")

	for _, item := range items {
		label := fmt.Sprintf("entry %d (%s)", item.Index, item.Type)
		length := utf8.RuneCountInString(item.Text)
		tooLong := length > MaxPostLength

		if mode == ModeStyled {
			b.WriteString(LabelStyle.Render(label))
			b.WriteString("\n")
			b.WriteString(PostStyle.Render(item.Text))
			b.WriteString("\n")
			if tooLong {
				b.WriteString(WarningStyle.Render(fmt.Sprintf("%d characters, over the %d limit", length, MaxPostLength)))
				b.WriteString("\n")
			}
			continue
		}

		fmt.Fprintf(&b, "%s %s: %s\n", SymbolBullet, label, item.Text)
		if tooLong {
			fmt.Fprintf(&b, "  warning: %d characters, over the %d limit\n", length, MaxPostLength)
		}
	}

	summary := fmt.Sprintf("%d processed, %d skipped by type, %d unmatched", stats.Processed, stats.Skipped, stats.Unmatched)
	if mode == ModeStyled {
		b.WriteString(SuccessStyle.Render(SymbolCheck + " " + summary))
	} else {
		b.WriteString(summary)
	}
	b.WriteString("\n")
	return b.String()
}
