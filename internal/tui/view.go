package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/boxkit/boxkit/pkg/style"
)

// View renders the gallery: one bordered card per component, labeled with
// the compiled class ids and the rule body issued for the current width.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("boxkit gallery"))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(m.renderCard(item.Name, m.classes[i]))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	if m.pending {
		return statusStyle.Render("measuring...")
	}
	return statusStyle.Render(fmt.Sprintf("container %dpx", m.measured))
}

func (m Model) renderCard(name, class string) string {
	inner := m.cardWidth() - 4

	lines := []string{
		nameStyle.Render(truncate(name, inner)),
		classStyle.Render(truncate(class, inner)),
	}
	if body := ruleBody(m.css, primaryClass(class)); body != "" {
		lines = append(lines, bodyStyle.Render(truncate(body, inner)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(m.cardWidth() - 2).Render(content)
}

func (m Model) cardWidth() int {
	w := m.width - 2
	if w > 76 {
		w = 76
	}
	if w < 24 {
		w = 24
	}
	return w
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// primaryClass picks the issued class out of a class attribute, skipping
// the shared reset class.
func primaryClass(class string) string {
	for _, f := range strings.Fields(class) {
		if f != style.ResetClass {
			return f
		}
	}
	return ""
}

// ruleBody extracts the declaration body for a class from a stylesheet
// dump, which holds one rule per line.
func ruleBody(css, class string) string {
	if class == "" {
		return ""
	}
	prefix := "." + class + "{"
	for _, line := range strings.Split(css, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSuffix(strings.TrimPrefix(line, prefix), "}")
		}
	}
	return ""
}
