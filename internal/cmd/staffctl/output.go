package staffctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable pads columns to their widest cell. Widths are measured before
// styling so escape codes do not skew alignment.
func writeTable(w io.Writer, headers []string, rows [][]string, empty string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, emptyStyle.Render(empty))
		return err
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = headerStyle.Render(padRight(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
		return err
	}
	for _, row := range rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(w io.Writer, title string, fields [][2]string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	width := 0
	for _, f := range fields {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	for _, f := range fields {
		value := f[1]
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s  %s\n", labelStyle.Render(padRight(f[0], width)), value)
	}
	fmt.Fprintln(w)
}

func padRight(s string, length int) string {
	if n := lipgloss.Width(s); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
