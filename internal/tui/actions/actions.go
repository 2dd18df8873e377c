package actions

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/feednav/internal/navigator"
)

type Loader interface {
	Load(ctx context.Context, url string) (*navigator.Resource, error)
}

type LoadSuccessMsg struct {
	URL      string
	Resource *navigator.Resource
	Duration time.Duration
}

type LoadErrorMsg struct {
	URL      string
	Err      error
	Duration time.Duration
}

// LoadCmd fetches and classifies url off the update loop.
func LoadCmd(loader Loader, url string, budget time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()
		start := time.Now()

		res, err := loader.Load(ctx, url)
		if err != nil {
			return LoadErrorMsg{URL: url, Err: err, Duration: time.Since(start)}
		}
		return LoadSuccessMsg{URL: url, Resource: res, Duration: time.Since(start)}
	}
}
