package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/feednav/internal/app"
	"github.com/glabrego/feednav/internal/config"
	"github.com/glabrego/feednav/internal/fetcher"
	"github.com/glabrego/feednav/internal/navigator"
	"github.com/glabrego/feednav/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "feednav")
		if err != nil {
			log.Fatalf("debug log error: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	client := fetcher.NewClient(cfg.UserAgent, cfg.Timeout, nil)
	service := app.NewService(client, app.Options{
		TopBlocks:    cfg.TopBlocks,
		ProbeLinks:   cfg.ProbeLinks,
		ProbeWorkers: cfg.ProbeWorkers,
	})

	policy := navigator.FeedInvalidQuit
	if cfg.FeedInvalid == config.FeedInvalidReprompt {
		policy = navigator.FeedInvalidReprompt
	}

	model := tui.NewModel(service, tui.Options{
		Navigator:  navigator.Options{FeedInvalid: policy},
		Width:      cfg.Width,
		LoadBudget: loadBudget(cfg),
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return 1
	}
	if m, ok := final.(tui.Model); ok && m.Failed() {
		return 1
	}
	return 0
}

// loadBudget leaves room for the size probes, which each get the per-request
// timeout on their own.
func loadBudget(cfg config.Config) time.Duration {
	if cfg.ProbeLinks {
		return 4 * cfg.Timeout
	}
	return cfg.Timeout
}
