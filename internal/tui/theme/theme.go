package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Index      lipgloss.Style
	ItemTitle  lipgloss.Style
	Link       lipgloss.Style
	Body       lipgloss.Style
	Truncated  lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	Prompt     lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateError lipgloss.Style
	StateLoad  lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpSapphire := lipgloss.Color("#74c7ec")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Index:      lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ItemTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Link:       lipgloss.NewStyle().Foreground(cpSapphire),
		Body:       lipgloss.NewStyle().Foreground(cpText),
		Truncated:  lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		Prompt:     lipgloss.NewStyle().Foreground(cpLavender),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpYellow),
		StateError: lipgloss.NewStyle().Foreground(cpRed).Bold(true),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
	}
}
