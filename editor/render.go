package editor

import (
	"fmt"
	"strings"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lines := strings.Split(m.buf.Text(), "\n")
	cursor := m.buf.Cursor()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		sb.WriteString(renderLine(m.cfg.Style, line, m.focused && row == cursor.Row, cursor.Col))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func gutterDigits(lineCount int) int {
	d := 1
	for lineCount >= 10 {
		lineCount /= 10
		d++
	}
	return d
}

func renderLine(st Style, line string, hasCursor bool, col int) string {
	if !hasCursor {
		return st.Text.Render(line)
	}

	rr := []rune(line)
	col = clampInt(col, 0, len(rr))
	if col == len(rr) {
		// Cursor at EOL is rendered as a 1-cell placeholder space.
		return st.Text.Render(string(rr)) + st.Cursor.Render(" ")
	}
	return st.Text.Render(string(rr[:col])) +
		st.Cursor.Render(string(rr[col])) +
		st.Text.Render(string(rr[col+1:]))
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
