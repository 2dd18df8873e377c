package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/glabrego/feednav/internal/extract"
	"github.com/glabrego/feednav/internal/feed"
	"github.com/glabrego/feednav/internal/navigator"
	"github.com/glabrego/feednav/internal/probe"
	"github.com/glabrego/feednav/internal/resolve"
)

const DefaultTopBlocks = 5

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
	ContentLength(ctx context.Context, url string) (int64, error)
}

type Options struct {
	TopBlocks    int
	ProbeLinks   bool
	ProbeWorkers int
}

// Service runs one fetch-and-classify cycle for the navigator.
type Service struct {
	fetcher Fetcher
	opts    Options
}

func NewService(fetcher Fetcher, opts Options) *Service {
	if opts.TopBlocks < 1 {
		opts.TopBlocks = DefaultTopBlocks
	}
	if opts.ProbeWorkers < 1 {
		opts.ProbeWorkers = 1
	}
	return &Service{fetcher: fetcher, opts: opts}
}

// Load fetches url and classifies it. Only the fetch itself can fail: feed
// parse errors fall through to HTML handling.
func (s *Service) Load(ctx context.Context, url string) (*navigator.Resource, error) {
	start := time.Now()
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if items, ok := feed.TryParse(body); ok {
		log.Printf("loaded feed %s: %d items in %s", url, len(items), time.Since(start))
		return &navigator.Resource{Kind: navigator.KindFeed, URL: url, Items: items}, nil
	}

	doc, err := extract.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	res := &navigator.Resource{
		Kind:   navigator.KindPage,
		URL:    url,
		Blocks: doc.TopBlocks(s.opts.TopBlocks),
		Links:  doc.Links(),
	}

	if s.opts.ProbeLinks && len(res.Links) > 0 {
		targets := make([]string, len(res.Links))
		for i, href := range res.Links {
			targets[i] = resolve.Resolve(url, href)
		}
		res.Sizes = probe.Lengths(ctx, s.fetcher, targets, s.opts.ProbeWorkers)
	}

	log.Printf("loaded page %s: %d blocks, %d links in %s", url, len(res.Blocks), len(res.Links), time.Since(start))
	return res, nil
}
