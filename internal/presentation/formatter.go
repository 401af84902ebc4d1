package presentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatText  = "text"
)

// ErrUnknownFormat is returned for an output format the formatter does not support.
var ErrUnknownFormat = errors.New("format must be table, json, or text")

// ValidFormat reports whether f is a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatTable, FormatJSON, FormatText:
		return true
	default:
		return false
	}
}

const (
	nameColumnWidth     = 24
	categoryColumnWidth = 11
	minSummaryWidth     = 20
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	categoryStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	width  int
}

// NewFormatter creates a new formatter. width is the terminal width used to
// wrap and truncate text output.
func NewFormatter(writer io.Writer, width int) *Formatter {
	return &Formatter{
		writer: writer,
		width:  width,
	}
}

// FormatEntries writes a list of entries in the given format
func (f *Formatter) FormatEntries(entries []EntryDTO, format string) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(entries)
	case FormatTable:
		return f.entriesTable(entries)
	case FormatText:
		for i, e := range entries {
			if i > 0 {
				if _, err := fmt.Fprintln(f.writer); err != nil {
					return err
				}
			}
			if err := f.entryText(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatEntry writes a single entry in the given format.
// Table output is not meaningful for one entry and falls back to text.
func (f *Formatter) FormatEntry(entry EntryDTO, format string) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(entry)
	case FormatText, FormatTable:
		return f.entryText(entry)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatCategories writes the catalog overview in the given format
func (f *Formatter) FormatCategories(categories []CategoryDTO, format string) error {
	switch format {
	case FormatJSON:
		return f.encodeJSON(categories)
	case FormatTable, FormatText:
		var b strings.Builder
		for _, c := range categories {
			b.WriteString(categoryStyle.Render(fmt.Sprintf("%s (%d)", c.Category, c.Count)))
			b.WriteString("\n")
			list := wordwrap.String(strings.Join(c.Patterns, ", "), f.textWidth()-2)
			b.WriteString(indent.String(list, 2))
			b.WriteString("\n")
		}
		_, err := io.WriteString(f.writer, b.String())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (f *Formatter) encodeJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// entriesTable renders one row per entry; summaries are truncated to the terminal width.
func (f *Formatter) entriesTable(entries []EntryDTO) error {
	summaryWidth := f.textWidth() - nameColumnWidth - categoryColumnWidth - 4
	if summaryWidth < minSummaryWidth {
		summaryWidth = minSummaryWidth
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(pad("NAME", nameColumnWidth)))
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(pad("CATEGORY", categoryColumnWidth)))
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("SUMMARY"))
	b.WriteString("\n")

	for _, e := range entries {
		b.WriteString(pad(e.Name, nameColumnWidth))
		b.WriteString("  ")
		b.WriteString(pad(e.Category, categoryColumnWidth))
		b.WriteString("  ")
		b.WriteString(runewidth.Truncate(e.Summary, summaryWidth, "…"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// entryText renders one entry as a short wrapped block.
func (f *Formatter) entryText(e EntryDTO) error {
	var b strings.Builder
	b.WriteString(categoryStyle.Render(e.Name))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render("(" + e.Category + ")"))
	b.WriteString("\n")
	b.WriteString(indent.String(wordwrap.String(e.Summary, f.textWidth()-2), 2))
	b.WriteString("\n")
	if e.Example != "" {
		b.WriteString(indent.String("Example: "+e.Example, 2))
		b.WriteString("\n")
	}
	if e.Source != "" && e.Source != "built-in" {
		b.WriteString(indent.String(mutedStyle.Render("Source: "+e.Source), 2))
		b.WriteString("\n")
	}

	_, err := io.WriteString(f.writer, b.String())
	return err
}

func (f *Formatter) textWidth() int {
	if f.width <= 0 {
		return 80
	}
	return f.width
}

// pad truncates or right-pads s to exactly width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
