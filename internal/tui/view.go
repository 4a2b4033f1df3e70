package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barHeight = 8

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	emptyBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FocusUp"))
	b.WriteString("\n")

	if m.snapshot.Loading {
		b.WriteString(statStyle.Render("loading activity..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.statsLine())
		b.WriteString("\n\n")
		b.WriteString(m.barChart())
		b.WriteString("\n")
	}

	if !m.focused {
		b.WriteString("\n")
		b.WriteString(blurredStyle.Render("terminal unfocused, time not counted"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("any key keeps the session active  |  q to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statsLine() string {
	today := statStyle.Render("today ") + statValueStyle.Render(fmt.Sprintf("%.1f min", m.minutes))
	streak := statStyle.Render("streak ") + statValueStyle.Render(fmt.Sprintf("%d day(s)", m.snapshot.Streak))
	return today + statStyle.Render("   ") + streak
}

// barChart draws the trailing 7 days as vertical bars scaled to the
// busiest day in the window.
func (m Model) barChart() string {
	window := m.snapshot.Window
	if len(window) == 0 {
		return ""
	}

	max := 0.0
	for _, day := range window {
		if day.Minutes > max {
			max = day.Minutes
		}
	}

	cols := make([]string, 0, len(window))
	for _, day := range window {
		filled := 0
		if max > 0 {
			filled = int(day.Minutes / max * barHeight)
			if day.Minutes > 0 && filled == 0 {
				filled = 1
			}
		}

		var col strings.Builder
		for row := barHeight; row > 0; row-- {
			if row <= filled {
				col.WriteString(barStyle.Render("  ██  "))
			} else {
				col.WriteString(emptyBarStyle.Render("  ··  "))
			}
			col.WriteString("\n")
		}
		col.WriteString(labelStyle.Render(centered(day.FormattedDate, 6)))
		cols = append(cols, col.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

func centered(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := width - w
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
