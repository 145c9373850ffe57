package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/templexxx/xhex"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type renderer struct {
	color    bool
	hexWidth int
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r renderer) report(rep report) string {
	var b strings.Builder

	if rep.isKey {
		verdict := r.style(errorStyle, "not an array index")
		if rep.isIndex {
			verdict = r.style(resultStyle, "array index")
		}
		fmt.Fprintf(&b, "%s %q: %s\n", r.style(labelStyle, "key"), rep.input, verdict)
		return b.String()
	}

	if rep.source != "" {
		fmt.Fprintf(&b, "%s %s  %s %d  %s %d\n",
			r.style(labelStyle, "source"), rep.source,
			r.style(labelStyle, "offset"), rep.offset,
			r.style(labelStyle, "length"), rep.length)
	}
	if rep.err != nil {
		b.WriteString(r.style(errorStyle, "error: "+rep.err.Error()))
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(r.hexdump(rep.data))
	return b.String()
}

// hexdump renders data as offset-prefixed lines of hex pairs.
func (r renderer) hexdump(data []byte) string {
	if len(data) == 0 {
		return r.style(helpStyle, "(0 bytes)") + "\n"
	}

	width := r.hexWidth
	var b strings.Builder
	line := make([]byte, 2*width)
	for off := 0; off < len(data); off += width {
		end := off + width
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		xhex.Encode(line[:2*len(chunk)], chunk)

		fmt.Fprintf(&b, "%s ", r.style(labelStyle, fmt.Sprintf("%08x", off)))
		for i := 0; i < len(chunk); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.Write(line[2*i : 2*i+2])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
