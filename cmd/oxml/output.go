package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	// indexStyle for element indexes
	indexStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// styleNameStyle for character style names
	styleNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// linkStyle for hyperlink destinations
	linkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("42"))

	// insertStyle and deleteStyle for diff lines
	insertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	deleteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// successStyle for completion messages
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// listingLine is one row of the text listing
type listingLine struct {
	Index       int
	Kind        string
	Style       string
	Text        string
	Destination string
}

// FormatListing renders one line per element: index, kind, quoted text, then
// style and destination when present.
func FormatListing(w io.Writer, lines []listingLine) {
	for _, line := range lines {
		parts := []string{
			indexStyle.Render(fmt.Sprintf("[%d]", line.Index)),
			dimStyle.Render(line.Kind),
			strconv.Quote(line.Text),
		}
		if line.Style != "" {
			parts = append(parts, styleNameStyle.Render("style="+line.Style))
		}
		if line.Destination != "" {
			parts = append(parts, dimStyle.Render("->"), linkStyle.Render(line.Destination))
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}

// FormatDiff renders a semantic diff between two logical texts. Each line of
// the output is prefixed with "+", "-" or a space. Tabs are shown as \t.
func FormatDiff(source, target string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(source, target, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result strings.Builder
	write := func(prefix, text string, style *lipgloss.Style) {
		for _, line := range strings.Split(strings.ReplaceAll(text, "\t", `\t`), "\n") {
			if style != nil {
				line = style.Render(prefix + line)
			} else {
				line = prefix + line
			}
			result.WriteString(line + "\n")
		}
	}

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			write("- ", diff.Text, &deleteStyle)
		case diffmatchpatch.DiffInsert:
			write("+ ", diff.Text, &insertStyle)
		case diffmatchpatch.DiffEqual:
			write("  ", diff.Text, nil)
		}
	}

	return result.String()
}

// FormatDone renders a completion message
func FormatDone(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}
