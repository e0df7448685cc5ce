// Package table lays out the selection as aligned plain-text columns.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column names a column and how its cells align.
type Column struct {
	Title string
	Align Alignment
}

// Format returns the rows padded according to the widest entry in each
// column. When any column has a title a header row and a rule come first.
// Trailing padding is trimmed from every line.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	withHeader := false
	for _, c := range columns {
		if c.Title != "" {
			withHeader = true
			break
		}
	}
	all := make([][]string, 0, len(rows)+2)
	if withHeader {
		header := make([]string, len(columns))
		for i, c := range columns {
			header[i] = c.Title
		}
		all = append(all, header)
	}
	all = append(all, rows...)

	widths := make([]int, len(columns))
	for _, row := range all {
		for c := 0; c < len(columns) && c < len(row); c++ {
			if w := cellWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	if withHeader {
		rule := make([]string, len(columns))
		for i, w := range widths {
			rule[i] = strings.Repeat("-", w)
		}
		all = append(all[:1], append([][]string{rule}, all[1:]...)...)
	}

	out := make([]string, len(all))
	for i, row := range all {
		var b strings.Builder
		for c := range columns {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - cellWidth(cell)
			if columns[c].Align == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
