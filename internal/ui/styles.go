package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xlemi/raagnote/internal/swara"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777"))

	recStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4444"))

	topMatchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00"))

	// Note colors
	noteColors = map[string]string{
		"C": "#E8D6B0", // Beige
		"D": "#A020F0", // Purple
		"E": "#FFFF00", // Yellow
		"F": "#FFA500", // Orange
		"G": "#00FF00", // Green
		"A": "#FF0000", // Red
		"B": "#0000FF", // Blue
	}

	// Next natural note, for the second half of a sharp's split color
	nextNote = map[string]string{
		"C": "D", "D": "E", "E": "F", "F": "G", "G": "A", "A": "B", "B": "C",
	}
)

func swaraBox(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color(color)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#333333")).
		Padding(2, 4).
		MarginBottom(1)
}

// renderSwara draws the swara in a box colored after its Western note.
// Sharps get a split box in the colors of the two neighbouring naturals.
func renderSwara(m swara.Mapping, script swara.Script) string {
	text := m.In(script).String()
	base := m.Note[:1]

	if !strings.HasSuffix(m.Note, "#") {
		return swaraBox(noteColors[base]).Render(text)
	}

	left := swaraBox(noteColors[base]).
		BorderRight(false).
		PaddingRight(1)
	right := swaraBox(noteColors[nextNote[base]]).
		BorderLeft(false).
		PaddingLeft(1)

	// Split between the first rune and the rest of the label
	runes := []rune(text)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(string(runes[:1])),
		right.Render(string(runes[1:])),
	)
}

const meterWidth = 21

// centMeter draws a ±50 cent tuning bar with the needle at the deviation
func centMeter(cents float64) string {
	c := math.Max(-50, math.Min(50, cents))
	pos := int(math.Round((c + 50) / 100 * (meterWidth - 1)))

	bar := []rune(strings.Repeat("─", meterWidth))
	bar[meterWidth/2] = '┼'
	bar[pos] = '▲'
	return "♭ " + string(bar) + " #"
}

// levelBar draws the input level from -60 dB to 0 dB
func levelBar(db float64) string {
	const width = 20
	filled := int(math.Round((math.Max(-60, math.Min(0, db)) + 60) / 60 * width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
