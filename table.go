package jsontab

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var roundedBorder = borderChars{
	topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

// ToTable renders the normalized dataset as a bordered text table for
// terminal inspection. Column widths use display width, so wide characters
// stay aligned.
func ToTable(v Value, opts Options) (string, error) {
	cols, rows, err := tabulate(v, opts)
	if err != nil {
		return "", err
	}
	if len(cols) == 0 {
		return "", nil
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(cols))
		for j, col := range cols {
			if cell, ok := row.Get(col); ok {
				cells[i][j] = cellText(cell)
			}
		}
	}
	widths := tableWidths(cols, cells)

	bc := roundedBorder
	var b strings.Builder
	drawTableLine(&b, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	drawTableRow(&b, cols, widths, bc.vertical)
	drawTableLine(&b, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	for _, row := range cells {
		drawTableRow(&b, row, widths, bc.vertical)
	}
	drawTableLine(&b, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
	return b.String(), nil
}

func tableWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func drawTableLine(b *strings.Builder, widths []int, left, fill, mid, right string) {
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func drawTableRow(b *strings.Builder, cells []string, widths []int, vert string) {
	b.WriteString(vert)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(padCell(cell, width))
		b.WriteString(" ")
		if i < len(widths)-1 {
			b.WriteString(vert)
		}
	}
	b.WriteString(vert)
	b.WriteString("\n")
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
