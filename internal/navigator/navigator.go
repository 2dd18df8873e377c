// Package navigator is the fetch → classify → present → select state
// machine. It owns the session and never performs I/O itself: the caller
// loads the resource for CurrentURL and hands the result back with Enter or
// Fail.
package navigator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glabrego/feednav/internal/extract"
	"github.com/glabrego/feednav/internal/feed"
	"github.com/glabrego/feednav/internal/resolve"
)

type State int

const (
	StateStart State = iota
	StateFetch
	StateFeedMenu
	StatePageMenu
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateFetch:
		return "fetch"
	case StateFeedMenu:
		return "feed"
	case StatePageMenu:
		return "page"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Kind tags what a fetched resource turned out to be.
type Kind int

const (
	KindFeed Kind = iota
	KindPage
)

// Resource is the classified result of one fetch. Feed resources carry
// Items; page resources carry Blocks and raw Links, plus Sizes when link
// probing ran (one per link).
type Resource struct {
	Kind   Kind
	URL    string
	Items  []feed.Item
	Blocks []extract.TextBlock
	Links  []string
	Sizes  []int64
}

type Session struct {
	CurrentURL string
	Page       int
	Expanded   bool
}

// FeedInvalidPolicy decides what a bad selection in the feed menu does.
type FeedInvalidPolicy int

const (
	FeedInvalidQuit FeedInvalidPolicy = iota
	FeedInvalidReprompt
)

type Options struct {
	FeedInvalid FeedInvalidPolicy
}

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Outcome tells the front end what to do after a transition.
type Outcome struct {
	Notice string
	Level  Level
	// Redraw asks for the current menu to be rendered again.
	Redraw bool
	// Fetch asks for Session().CurrentURL to be loaded.
	Fetch bool
	Quit  bool
	Bell  bool
}

type Navigator struct {
	opts    Options
	state   State
	session Session
	res     *Resource
	failed  bool
}

func New(opts Options) Navigator {
	return Navigator{opts: opts, state: StateStart}
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) Session() Session {
	return n.session
}

func (n *Navigator) Resource() *Resource {
	return n.res
}

// Failed reports whether the session ended on a fetch error.
func (n *Navigator) Failed() bool {
	return n.failed
}

func (n *Navigator) Handle(input string) Outcome {
	input = strings.TrimSpace(input)
	switch n.state {
	case StateStart:
		return n.navigate(resolve.Normalize(input))
	case StateFeedMenu:
		return n.handleFeed(input)
	case StatePageMenu:
		return n.handlePage(input)
	default:
		return Outcome{}
	}
}

// Enter completes a fetch with its classified resource.
func (n *Navigator) Enter(res *Resource) {
	if n.state != StateFetch || res == nil {
		return
	}
	n.res = res
	if res.Kind == KindFeed {
		n.state = StateFeedMenu
		return
	}
	n.state = StatePageMenu
}

// Fail completes a fetch that could not be loaded. The session ends.
func (n *Navigator) Fail(err error) Outcome {
	n.failed = true
	out := n.terminate()
	out.Level = LevelError
	out.Notice = fmt.Sprintf("Error fetching %s: %v", n.session.CurrentURL, err)
	return out
}

func (n *Navigator) handleFeed(input string) Outcome {
	if input == "q" {
		return n.terminate()
	}
	if idx, ok := parseSelection(input, len(n.res.Items)); ok {
		return n.navigate(n.res.Items[idx-1].Link)
	}
	if n.opts.FeedInvalid == FeedInvalidReprompt {
		return Outcome{Notice: "Invalid selection, try again.", Level: LevelWarn, Redraw: true}
	}
	out := n.terminate()
	out.Notice = "Invalid selection, exiting."
	out.Level = LevelWarn
	return out
}

func (n *Navigator) handlePage(input string) Outcome {
	w := n.window()
	switch {
	case input == "q":
		return n.terminate()
	case input == "e" && n.canExpand():
		n.session.Expanded = true
		return Outcome{Redraw: true}
	case input == "n" && w.HasNext():
		n.session.Page++
		return Outcome{Redraw: true}
	case input == "b" && n.session.Page > 0:
		n.session.Page--
		return Outcome{Redraw: true}
	}
	if idx, ok := parseSelection(input, w.Len()); ok {
		raw := n.res.Links[w.Start+idx-1]
		return n.navigate(resolve.Resolve(n.session.CurrentURL, raw))
	}
	return Outcome{Notice: "Invalid input, try again.", Level: LevelWarn, Redraw: true}
}

func (n *Navigator) navigate(url string) Outcome {
	n.session = Session{CurrentURL: url}
	n.res = nil
	n.state = StateFetch
	return Outcome{Notice: "Fetching: " + url, Level: LevelInfo, Fetch: true}
}

func (n *Navigator) terminate() Outcome {
	n.state = StateTerminated
	return Outcome{Quit: true, Bell: true}
}

func (n *Navigator) window() Window {
	if n.res == nil {
		return Window{}
	}
	return WindowFor(n.session.Page, len(n.res.Links))
}

func (n *Navigator) canExpand() bool {
	return n.res != nil && !n.session.Expanded && len(n.res.Blocks) > 0
}

func parseSelection(input string, limit int) (int, bool) {
	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > limit {
		return 0, false
	}
	return idx, true
}
