package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// gamedo theme (CLI + TUI).
// Kept small: reusable styles and a few emojis.

const (
	IconTask    = "📝"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconClock   = "🕒"
	IconLock    = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2     = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
	Key    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good   = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn   = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Bold   = lipgloss.NewStyle().Bold(true)
	Struck = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	FocusPanel  = Panel.BorderForeground(cPrimary)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Tone maps a semantic tone (success, warning, danger, info) to a style.
func Tone(tone string) lipgloss.Style {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case "success":
		return Good
	case "warning":
		return Warn
	case "danger":
		return Bad
	case "info":
		return H2
	default:
		return Muted
	}
}

// ProgressBar draws a fixed-width bar for a percentage in [0, 100].
func ProgressBar(percentage float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled)) + "]"
}
