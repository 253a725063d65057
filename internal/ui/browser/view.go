package browser

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/gitref/internal/render"
	"github.com/raphi011/gitref/internal/ui/styles"
)

// lineSpan is an inclusive range of viewport lines.
type lineSpan struct {
	start int
	end   int
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	))
	v.AltScreen = true
	v.WindowTitle = m.tree.Header.Title
	return v
}

// headerView paints title, controls, category nav and search input.
func (m Model) headerView() string {
	h := m.tree.Header

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(h.Title))
	if h.Subtitle != "" {
		b.WriteString("  ")
		b.WriteString(styles.MutedStyle.Render(h.Subtitle))
	}
	b.WriteString("\n")

	controls := []string{
		controlHint("L", h.LangButton),
		controlHint("e", h.ExpandAll),
		controlHint("c", h.CollapseAll),
	}
	b.WriteString(ansi.Truncate(strings.Join(controls, "  "), m.width, "…"))
	b.WriteString("\n")

	b.WriteString(m.navView())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	return b.String()
}

func controlHint(key, label string) string {
	return styles.MutedStyle.Render("["+key+"]") + " " + label
}

// navView paints one tab per category, exactly one of them active.
func (m Model) navView() string {
	tabs := make([]string, len(m.tree.Nav))
	for i, n := range m.tree.Nav {
		label := fmt.Sprintf("%d %s", i, n.Label)
		if n.Active {
			tabs[i] = styles.NavActiveStyle.Render(label)
		} else {
			tabs[i] = styles.NavItemStyle.Render(label)
		}
	}
	return ansi.Truncate(strings.Join(tabs, ""), m.width, "…")
}

func (m Model) footerView() string {
	if m.toast != "" {
		return styles.ToastStyle.Render(styles.CurrentSymbols().Copied + " " + m.toast)
	}
	return m.help.View(m.keys)
}

// paintBody paints sections and cards and records the line span of every
// card for cursor scrolling.
func (m Model) paintBody() (string, []lineSpan) {
	if m.tree.NoResults != nil {
		n := m.tree.NoResults
		body := "\n" + styles.Bold.Render(n.Title) + "\n" + styles.MutedStyle.Render(n.Hint)
		return body, nil
	}

	width := max(m.width, 20)
	var (
		lines []string
		spans []lineSpan
		index int
	)
	for _, s := range m.tree.Sections {
		lines = append(lines, "", styles.SectionTitleStyle.UnsetMarginTop().Render(s.Number+". "+s.Title))
		if s.Description != "" {
			lines = append(lines, strings.Split(styles.MutedStyle.Render(ansi.Wordwrap(s.Description, width, "")), "\n")...)
		}
		for _, c := range s.Cards {
			card := m.paintCard(c, index == m.cursor, width)
			start := len(lines)
			lines = append(lines, strings.Split(card, "\n")...)
			spans = append(spans, lineSpan{start: start, end: len(lines) - 1})
			index++
		}
	}
	return strings.Join(lines, "\n"), spans
}

func (m Model) paintCard(c render.Card, focused bool, width int) string {
	style := styles.CardStyle
	marker := " "
	if focused {
		style = styles.FocusedCardStyle
		marker = styles.AccentStyle.Render(styles.CurrentSymbols().Cursor)
	}
	inner := width - style.GetHorizontalFrameSize()

	left := marker + " " + styles.ExpansionSymbol(c.Expanded) + " " + styles.CommandStyle.Render(c.Command)
	control := styles.CopyControl(m.loc.CopyLabel, c.Command == m.copied)
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(control)
	if gap < 1 {
		left = ansi.Truncate(left, max(inner-ansi.StringWidth(control)-1, 1), "…")
		gap = 1
	}

	var b strings.Builder
	b.WriteString(left + strings.Repeat(" ", gap) + control)
	b.WriteString("\n")
	b.WriteString(styles.NormalStyle.Render(ansi.Wordwrap(c.Description, inner, "")))
	if c.Expanded {
		b.WriteString("\n")
		b.WriteString(styles.InfoStyle.Render(c.ExampleLabel + ":"))
		b.WriteString("\n")
		b.WriteString(styles.ExampleStyle.Render(ansi.Wordwrap(c.Example, inner-styles.ExampleStyle.GetHorizontalFrameSize(), "")))
	}
	return style.Render(b.String())
}
