package content

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var delimiterCellPattern = regexp.MustCompile(`^:?-+:?$`)

type alignment int

const (
	alignNone alignment = iota
	alignLeft
	alignRight
	alignCenter
)

// FormatTables realigns GFM pipe tables so every column is padded to the
// display width of its widest cell. Alignment colons are preserved and
// tables inside fenced code blocks are left untouched.
func FormatTables(md string) string {
	if !strings.Contains(md, "|") {
		return md
	}

	lines := strings.Split(md, "\n")
	out := make([]string, 0, len(lines))
	var fence fenceTracker

	for i := 0; i < len(lines); {
		line := lines[i]
		inCode := fence.inside()
		fence.observe(line)

		if inCode || i+1 >= len(lines) {
			out = append(out, line)
			i++
			continue
		}

		indent, ok := tableIndent(line)
		if !ok {
			out = append(out, line)
			i++
			continue
		}

		header := splitRow(line)
		aligns, ok := parseDelimiterRow(lines[i+1], len(header))
		if !ok {
			out = append(out, line)
			i++
			continue
		}

		rows := [][]string{header}
		j := i + 2
		for j < len(lines) {
			if _, ok := tableIndent(lines[j]); !ok {
				break
			}
			if _, fenced := fenceMarker(lines[j]); fenced {
				break
			}
			rows = append(rows, fitRow(splitRow(lines[j]), len(header)))
			j++
		}

		out = append(out, renderTable(indent, rows, aligns)...)
		i = j
	}

	return strings.Join(out, "\n")
}

// tableIndent reports whether line can be a table row and returns its
// leading indentation. Four or more spaces make an indented code block.
func tableIndent(line string) (string, bool) {
	if strings.TrimSpace(line) == "" || !hasUnescapedPipe(line) {
		return "", false
	}
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]
	if len(indent) > 3 || strings.HasPrefix(trimmed, "\t") {
		return "", false
	}
	return indent, true
}

func hasUnescapedPipe(line string) bool {
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			return true
		}
	}
	return false
}

// splitRow splits a row on unescaped pipes, dropping the optional outer
// pipes and trimming each cell.
func splitRow(line string) []string {
	row := strings.TrimSpace(strings.TrimRight(line, "\r"))
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}

	var (
		cells   []string
		cell    strings.Builder
		escaped bool
	)
	for _, r := range row {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
			continue
		}
		cell.WriteRune(r)
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

func parseDelimiterRow(line string, columns int) ([]alignment, bool) {
	if !strings.Contains(line, "|") {
		return nil, false
	}
	if _, ok := tableIndent(line); !ok {
		return nil, false
	}

	cells := splitRow(line)
	if len(cells) != columns {
		return nil, false
	}

	aligns := make([]alignment, columns)
	for i, cell := range cells {
		if !delimiterCellPattern.MatchString(cell) {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = alignCenter
		case left:
			aligns[i] = alignLeft
		case right:
			aligns[i] = alignRight
		}
	}
	return aligns, true
}

// fitRow pads short body rows with empty cells and drops the excess of long
// ones, as GFM renderers do.
func fitRow(cells []string, columns int) []string {
	if len(cells) > columns {
		return cells[:columns]
	}
	for len(cells) < columns {
		cells = append(cells, "")
	}
	return cells
}

func renderTable(indent string, rows [][]string, aligns []alignment) []string {
	widths := make([]int, len(aligns))
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, len(rows)+1)
	out = append(out, renderRow(indent, rows[0], widths, aligns))

	delims := make([]string, len(aligns))
	for i, align := range aligns {
		delims[i] = delimiterCell(widths[i], align)
	}
	out = append(out, indent+"| "+strings.Join(delims, " | ")+" |")

	for _, row := range rows[1:] {
		out = append(out, renderRow(indent, row, widths, aligns))
	}
	return out
}

func renderRow(indent string, row []string, widths []int, aligns []alignment) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = pad(cell, widths[i], aligns[i])
	}
	return indent + "| " + strings.Join(cells, " | ") + " |"
}

func pad(cell string, width int, align alignment) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", gap) + cell
	case alignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

func delimiterCell(width int, align alignment) string {
	switch align {
	case alignLeft:
		return ":" + strings.Repeat("-", width-1)
	case alignRight:
		return strings.Repeat("-", width-1) + ":"
	case alignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return strings.Repeat("-", width)
	}
}
