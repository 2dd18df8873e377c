package navigator

// PageSize is the number of links shown per menu page.
const PageSize = 10

const (
	// TruncateAt is the display limit for a text block outside expanded mode.
	TruncateAt       = 1000
	TruncationMarker = " [...]"
)

// Window is the slice of the link list visible on one page.
type Window struct {
	Start int
	End   int
	Total int
}

func WindowFor(page, total int) Window {
	if total < 0 {
		total = 0
	}
	if page < 0 {
		page = 0
	}
	start := page * PageSize
	if start > total {
		start = total
	}
	return Window{Start: start, End: min(start+PageSize, total), Total: total}
}

func (w Window) Len() int {
	return w.End - w.Start
}

func (w Window) HasNext() bool {
	return w.End < w.Total
}

func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// Truncate shortens text to TruncateAt characters plus TruncationMarker
// unless expanded is set. The second result reports whether it cut.
func Truncate(text string, expanded bool) (string, bool) {
	if expanded {
		return text, false
	}
	count := 0
	for i := range text {
		if count == TruncateAt {
			return text[:i] + TruncationMarker, true
		}
		count++
	}
	return text, false
}
