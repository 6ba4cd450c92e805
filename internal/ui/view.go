package ui

import (
	"fmt"
	"strings"

	"vtpod.dev/vtpod/internal/format/table"
	"vtpod.dev/vtpod/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerRows = 3 // bordered header region
	footerRows = 3 // bordered footer region
	frameCols  = 4 // border + padding on each side of a region
	frameRows  = 2 // top and bottom border of a region
)

// View implements tea.Model. The frame is three vertical regions: a title
// header, a body (menu list, output text, or input line), and a footer hint.
func (m *Model) View() string {
	sections := []string{m.renderHeader(), m.renderBody()}
	if m.showFooter {
		sections = append(sections, m.renderFooter())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderHeader() string {
	return m.region(styles.Header.Render(m.title()), 1)
}

func (m *Model) renderBody() string {
	var content string
	switch m.screen.Kind {
	case menu.ScreenOutput:
		content = m.outputBody()
	case menu.ScreenInput:
		content = m.input.View()
	default:
		content = m.listBody()
	}
	return m.region(content, m.bodyHeight())
}

func (m *Model) renderFooter() string {
	lines := []string{styles.Footer.Render(m.footerHint())}
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render("Error: "+m.errMsg))
	}
	if m.verbose && m.lastCommand != "" {
		lines = append(lines, styles.Footer.Render("$ "+m.lastCommand))
	}
	return m.region(strings.Join(lines, "\n"), len(lines))
}

func (m *Model) title() string {
	switch m.screen.Kind {
	case menu.ScreenInput:
		return m.screen.Prompt
	default:
		return m.definition.Title(m.screen.Kind)
	}
}

// listBody renders the current screen's entries with the label column
// aligned and the selected row marked.
func (m *Model) listBody() string {
	entries := m.definition.Entries(m.screen.Kind)
	if len(entries) == 0 {
		return "(no entries)"
	}
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Label, entry.Detail}
	}
	cells := table.Pad(rows)
	lines := make([]string, len(entries))
	for i, entry := range entries {
		indicator := "  "
		labelStyle := styles.Item
		if i == m.cursor {
			indicator = styles.SelectedItemIndicator.Render("▌ ")
			labelStyle = styles.SelectedItem
		}
		line := indicator + labelStyle.Render(cells[i][0])
		if entry.Detail != "" {
			line += "  " + styles.ItemDetail.Render(cells[i][1])
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) outputBody() string {
	if m.loading {
		return styles.Loading.Render(fmt.Sprintf("Running %s…", m.pendingLabel))
	}
	if m.output == "" {
		return ""
	}
	return styles.Output.Render(fitText(m.output, m.innerWidth(), m.bodyHeight()))
}

func (m *Model) footerHint() string {
	switch m.screen.Kind {
	case menu.ScreenMain:
		return "↑/↓ move  enter select  q/esc quit"
	case menu.ScreenOutput:
		return "esc/q/enter back"
	case menu.ScreenInput:
		return "type and press enter  esc cancel"
	default:
		return "↑/↓ move  enter select  esc back  ctrl+c quit"
	}
}

// region wraps content in the shared bordered box, pinned to the viewport
// width and the given content height when dimensions are known.
func (m *Model) region(content string, contentHeight int) string {
	style := *styles.Border
	if m.width > frameCols {
		style = style.Width(m.width - frameRows)
	}
	if contentHeight > 0 {
		style = style.Height(contentHeight)
	}
	return style.Render(content)
}

func (m *Model) innerWidth() int {
	if m.width <= frameCols {
		return 0
	}
	return m.width - frameCols
}

// bodyHeight returns the content rows left for the body region once the
// header and footer are placed. Zero means unconstrained.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := headerRows + frameRows
	if m.showFooter {
		used += footerRows
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

// fitText bounds multi-line text to the given width and height, marking
// truncation with an ellipsis.
func fitText(text string, width, height int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if height > 0 && len(lines) > height {
		lines = append(lines[:height-1], "…")
	}
	if width > 0 {
		for i, line := range lines {
			if lipgloss.Width(line) > width {
				lines[i] = truncate.StringWithTail(line, uint(width-1), "…")
			}
		}
	}
	return strings.Join(lines, "\n")
}
