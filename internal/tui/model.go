package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/feednav/internal/navigator"
	"github.com/glabrego/feednav/internal/tui/actions"
	tuitheme "github.com/glabrego/feednav/internal/tui/theme"
	"github.com/glabrego/feednav/internal/tui/view"
)

const defaultLoadBudget = 15 * time.Second

type Options struct {
	Navigator navigator.Options
	// Width is the wrap width for text blocks.
	Width int
	// LoadBudget bounds one whole load, link probing included.
	LoadBudget time.Duration
}

// Model drives the navigator from an inline (non alt-screen) program.
// Menus and notices are printed above the prompt so the session reads as a
// linear transcript.
type Model struct {
	loader  actions.Loader
	nav     navigator.Navigator
	input   textinput.Model
	theme   tuitheme.Theme
	width   int
	budget  time.Duration
	loading bool
	loadFn  func(actions.Loader, string, time.Duration) tea.Cmd
}

func NewModel(loader actions.Loader, opts Options) Model {
	th := tuitheme.Default()
	nav := navigator.New(opts.Navigator)

	in := textinput.New()
	in.Prompt = nav.Prompt()
	in.PromptStyle = th.Prompt
	in.CharLimit = 4096
	in.Focus()

	budget := opts.LoadBudget
	if budget <= 0 {
		budget = defaultLoadBudget
	}
	return Model{
		loader: loader,
		nav:    nav,
		input:  in,
		theme:  th,
		width:  opts.Width,
		budget: budget,
		loadFn: actions.LoadCmd,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.loading || m.nav.State() == navigator.StateTerminated {
				return m, nil
			}
			return m.submit()
		}
	case actions.LoadSuccessMsg:
		if !m.loading || msg.URL != m.nav.Session().CurrentURL {
			return m, nil
		}
		m.loading = false
		m.nav.Enter(msg.Resource)
		m.input.Prompt = m.nav.Prompt()
		return m, tea.Println(view.Render(m.nav.Screen(), m.width, m.theme))
	case actions.LoadErrorMsg:
		if !m.loading || msg.URL != m.nav.Session().CurrentURL {
			return m, nil
		}
		m.loading = false
		return m, m.apply(m.nav.Fail(msg.Err), nil)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch {
	case m.nav.State() == navigator.StateTerminated:
		return ""
	case m.loading:
		return m.theme.StateLoad.Render("Fetching " + m.nav.Session().CurrentURL + " ...")
	default:
		return m.input.View()
	}
}

// Failed reports whether the session ended because a fetch failed.
func (m Model) Failed() bool {
	return m.nav.Failed()
}

func (m Model) State() navigator.State {
	return m.nav.State()
}

func (m Model) Session() navigator.Session {
	return m.nav.Session()
}

func (m Model) Loading() bool {
	return m.loading
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	echo := m.input.Prompt + value
	m.input.Reset()

	out := m.nav.Handle(value)
	cmd := m.apply(out, tea.Println(echo))
	if out.Fetch {
		m.loading = true
	}
	m.input.Prompt = m.nav.Prompt()
	return m, cmd
}

// apply turns a navigator outcome into printed lines and the follow-up
// command, in order.
func (m Model) apply(out navigator.Outcome, first tea.Cmd) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 4)
	if first != nil {
		cmds = append(cmds, first)
	}
	if out.Notice != "" {
		cmds = append(cmds, tea.Println(view.Notice(out.Level, out.Notice, m.theme)))
	}
	switch {
	case out.Quit:
		bye := view.Notice(navigator.LevelInfo, "Session ended.", m.theme)
		if out.Bell {
			bye += view.Bell
		}
		cmds = append(cmds, tea.Println(bye), tea.Quit)
	case out.Fetch:
		cmds = append(cmds, m.loadFn(m.loader, m.nav.Session().CurrentURL, m.budget))
	case out.Redraw:
		cmds = append(cmds, tea.Println(view.Render(m.nav.Screen(), m.width, m.theme)))
	}
	return tea.Sequence(cmds...)
}
