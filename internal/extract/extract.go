// Package extract picks the most salient text blocks and the raw link list
// out of an HTML document.
package extract

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"
)

// MinBlockLength is the shortest trimmed text, in characters, that counts
// as prose rather than navigation or button labels.
const MinBlockLength = 61

// containerTags are scanned in this order; the first occurrence of a
// duplicate text wins.
var containerTags = []string{"article", "section", "div", "p"}

// TextBlock is a trimmed run of readable text from one container element.
type TextBlock struct {
	Content string
	Length  int
}

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

func Parse(raw []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// TopBlocks returns at most k blocks, longest first.
func (d *Document) TopBlocks(k int) []TextBlock {
	if k <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	blocks := make([]TextBlock, 0, 16)
	for _, tag := range containerTags {
		d.doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if s.ParentsFiltered("script, style").Length() > 0 {
				return
			}
			text := strings.TrimSpace(visibleText(s.Get(0)))
			length := utf8.RuneCountInString(text)
			if length < MinBlockLength {
				return
			}
			if _, dup := seen[text]; dup {
				return
			}
			seen[text] = struct{}{}
			blocks = append(blocks, TextBlock{Content: text, Length: length})
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Length > blocks[j].Length
	})
	if len(blocks) > k {
		blocks = blocks[:k]
	}
	return blocks
}

// Links returns every anchor href in document order. Values are raw: they
// may be relative, empty or repeated.
func (d *Document) Links() []string {
	links := make([]string, 0, 32)
	d.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, href)
	})
	return links
}

func TopBlocks(raw []byte, k int) []TextBlock {
	doc, err := Parse(raw)
	if err != nil {
		return nil
	}
	return doc.TopBlocks(k)
}

func Links(raw []byte) []string {
	doc, err := Parse(raw)
	if err != nil {
		return nil
	}
	return doc.Links()
}

// visibleText concatenates the text nodes under n, leaving out script and
// style subtrees.
func visibleText(n *nethtml.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*nethtml.Node)
	walk = func(n *nethtml.Node) {
		switch n.Type {
		case nethtml.TextNode:
			sb.WriteString(n.Data)
			return
		case nethtml.ElementNode:
			if isHidden(n) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func isHidden(n *nethtml.Node) bool {
	switch strings.ToLower(n.Data) {
	case "script", "style":
		return true
	}
	return false
}
