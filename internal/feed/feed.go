// Package feed classifies fetched bytes as a syndication feed.
package feed

import (
	"bytes"
	"strings"

	"github.com/mmcdole/gofeed"
)

// UntitledPlaceholder is shown for entries that carry no title.
const UntitledPlaceholder = "Untitled"

// Item is one selectable feed entry.
type Item struct {
	Title string
	Link  string
}

// TryParse reports whether raw is a feed with at least one entry. Parser
// failures and empty feeds both come back as (nil, false) so the caller can
// fall through to HTML handling.
func TryParse(raw []byte) ([]Item, bool) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(raw))
	if err != nil || parsed == nil || len(parsed.Items) == 0 {
		return nil, false
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if entry == nil {
			continue
		}
		items = append(items, Item{
			Title: entryTitle(entry),
			Link:  entryLink(entry),
		})
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}

func entryTitle(entry *gofeed.Item) string {
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		return UntitledPlaceholder
	}
	return title
}

func entryLink(entry *gofeed.Item) string {
	for _, link := range entry.Links {
		if link != "" {
			return link
		}
	}
	return entry.Link
}
