package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/glabrego/feednav/internal/navigator"
	tuitheme "github.com/glabrego/feednav/internal/tui/theme"
)

// Bell is the audible end-of-session signal.
const Bell = "\a"

func Marker(level navigator.Level, th tuitheme.Theme) string {
	switch level {
	case navigator.LevelWarn:
		return th.StateWarn.Render("[*]")
	case navigator.LevelError:
		return th.StateError.Render("[!]")
	default:
		return th.StateIdle.Render("[+]")
	}
}

func Notice(level navigator.Level, text string, th tuitheme.Theme) string {
	return Marker(level, th) + " " + text
}

// Render draws the menu for the navigator's current state. States without a
// menu render as the empty string.
func Render(s navigator.Screen, width int, th tuitheme.Theme) string {
	switch s.State {
	case navigator.StateFeedMenu:
		return FeedMenu(s, th)
	case navigator.StatePageMenu:
		return PageMenu(s, width, th)
	default:
		return ""
	}
}

func FeedMenu(s navigator.Screen, th tuitheme.Theme) string {
	lines := make([]string, 0, len(s.Items)*2+1)
	lines = append(lines, th.Section.Render("--- FEED DETECTED ---"))
	for i, item := range s.Items {
		lines = append(lines, Index(i+1, th)+" "+th.ItemTitle.Render(item.Title))
		lines = append(lines, "    "+th.Link.Render(item.Link))
	}
	return strings.Join(lines, "\n")
}

func PageMenu(s navigator.Screen, width int, th tuitheme.Theme) string {
	lines := []string{
		th.Section.Render("--- HTML PAGE ---"),
		th.Section.Render("--- Content ---"),
	}

	if len(s.Blocks) == 0 {
		lines = append(lines, Notice(navigator.LevelWarn, "No significant text found.", th))
	}
	for i, block := range s.Blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styleLines(th.Body, WrapText(block.Text, width))...)
	}

	lines = append(lines, "")
	if s.Window.Total == 0 {
		lines = append(lines, Notice(navigator.LevelWarn, "No links found.", th))
	} else {
		lines = append(lines, th.Section.Render(fmt.Sprintf("--- LINKS (page %d/%d) ---", s.Page+1, s.Pages)))
		for _, link := range s.Links {
			lines = append(lines, LinkLine(link, th))
		}
	}

	for _, c := range s.Commands {
		lines = append(lines, th.MetaLabel.Render("["+c.Key+"]")+" "+th.MetaValue.Render(c.Label))
	}
	return strings.Join(lines, "\n")
}

func Index(n int, th tuitheme.Theme) string {
	return th.Index.Render(fmt.Sprintf("[%d]", n))
}

func LinkLine(link navigator.LinkView, th tuitheme.Theme) string {
	line := Index(link.Number, th) + " " + th.Link.Render(link.URL)
	if link.HasSize {
		line += " " + th.MetaLabel.Render("(size: "+humanize.Bytes(uint64(link.Size))+")")
	}
	return line
}

// WrapText word-wraps text to width, hard-breaking words that do not fit.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

func styleLines(style lipgloss.Style, text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, " ")
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, style.Render(line))
	}
	return out
}
