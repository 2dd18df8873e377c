package navigator

import (
	"strings"

	"github.com/glabrego/feednav/internal/feed"
	"github.com/glabrego/feednav/internal/resolve"
)

type Command struct {
	Key   string
	Label string
}

type BlockView struct {
	Text      string
	Truncated bool
}

type LinkView struct {
	Number  int
	URL     string
	Size    int64
	HasSize bool
}

// Screen is everything the front end needs to draw the current menu.
type Screen struct {
	State    State
	URL      string
	Items    []feed.Item
	Blocks   []BlockView
	Links    []LinkView
	Window   Window
	Page     int
	Pages    int
	Commands []Command
}

func (n *Navigator) Screen() Screen {
	s := Screen{State: n.state, URL: n.session.CurrentURL, Page: n.session.Page}
	if n.res == nil {
		return s
	}

	switch n.state {
	case StateFeedMenu:
		s.Items = n.res.Items
		s.Commands = []Command{{Key: "q", Label: "Quit"}}
	case StatePageMenu:
		for _, b := range n.res.Blocks {
			text, cut := Truncate(b.Content, n.session.Expanded)
			s.Blocks = append(s.Blocks, BlockView{Text: text, Truncated: cut})
		}
		s.Window = n.window()
		s.Pages = PageCount(len(n.res.Links))
		for i := s.Window.Start; i < s.Window.End; i++ {
			link := LinkView{
				Number: i - s.Window.Start + 1,
				URL:    resolve.Resolve(n.session.CurrentURL, n.res.Links[i]),
			}
			if len(n.res.Sizes) == len(n.res.Links) {
				link.Size = n.res.Sizes[i]
				link.HasSize = true
			}
			s.Links = append(s.Links, link)
		}
		s.Commands = n.pageCommands()
	}
	return s
}

func (n *Navigator) pageCommands() []Command {
	var cmds []Command
	if n.window().HasNext() {
		cmds = append(cmds, Command{Key: "n", Label: "Next page"})
	}
	if n.session.Page > 0 {
		cmds = append(cmds, Command{Key: "b", Label: "Previous page"})
	}
	if n.canExpand() {
		cmds = append(cmds, Command{Key: "e", Label: "Expand text"})
	}
	return append(cmds, Command{Key: "q", Label: "Quit"})
}

func (n *Navigator) Prompt() string {
	switch n.state {
	case StateStart:
		return "Enter feed or HTML URL: "
	case StateFeedMenu:
		return "Pick article number to open, or 'q' to quit: "
	case StatePageMenu:
		var parts []string
		if n.window().Len() > 0 {
			parts = append(parts, "a link number")
		}
		for _, c := range n.pageCommands() {
			switch c.Key {
			case "n":
				parts = append(parts, "'n' for next")
			case "b":
				parts = append(parts, "'b' for back")
			case "e":
				parts = append(parts, "'e' to expand")
			}
		}
		if len(parts) == 0 {
			return "Enter 'q' to quit: "
		}
		return "Pick " + strings.Join(parts, ", ") + ", or 'q' to quit: "
	default:
		return ""
	}
}
