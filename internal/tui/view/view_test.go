package view

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/glabrego/feednav/internal/feed"
	"github.com/glabrego/feednav/internal/navigator"
	tuitheme "github.com/glabrego/feednav/internal/tui/theme"
)

var updateViewGolden = flag.Bool("update-view-golden", false, "update view golden files")

var ansiStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiStrip.ReplaceAllString(s, "")
}

func TestPageMenu_Golden(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	th := tuitheme.Default()

	screen := navigator.Screen{
		State:  navigator.StatePageMenu,
		URL:    "https://e/",
		Blocks: []navigator.BlockView{{Text: "Alpha beta gamma delta"}},
		Window: navigator.Window{Start: 0, End: 2, Total: 12},
		Page:   0,
		Pages:  2,
		Links: []navigator.LinkView{
			{Number: 1, URL: "https://e/a", Size: 1234, HasSize: true},
			{Number: 2, URL: "https://e/b"},
		},
		Commands: []navigator.Command{{Key: "n", Label: "Next page"}, {Key: "q", Label: "Quit"}},
	}

	assertViewGolden(t, "page_menu.golden", plain(Render(screen, 80, th)))
}

func TestFeedMenu_ListsItemsWithLinks(t *testing.T) {
	th := tuitheme.Default()
	screen := navigator.Screen{
		State: navigator.StateFeedMenu,
		Items: []feed.Item{{Title: "A", Link: "https://x/1"}, {Title: "B"}},
	}

	lines := strings.Split(plain(Render(screen, 80, th)), "\n")
	want := []string{"--- FEED DETECTED ---", "[1] A", "    https://x/1", "[2] B", "    "}
	if len(lines) != len(want) {
		t.Fatalf("unexpected line count %d: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPageMenu_EmptyNotices(t *testing.T) {
	th := tuitheme.Default()
	screen := navigator.Screen{
		State:    navigator.StatePageMenu,
		Commands: []navigator.Command{{Key: "q", Label: "Quit"}},
	}

	out := plain(Render(screen, 80, th))
	if !strings.Contains(out, "[*] No significant text found.") {
		t.Fatalf("expected no-text notice, got:\n%s", out)
	}
	if !strings.Contains(out, "[*] No links found.") {
		t.Fatalf("expected no-links notice, got:\n%s", out)
	}
	if strings.Contains(out, "--- LINKS") {
		t.Fatalf("expected no link window for an empty list, got:\n%s", out)
	}
}

func TestPageMenu_WrapsBlocks(t *testing.T) {
	th := tuitheme.Default()
	screen := navigator.Screen{
		State:  navigator.StatePageMenu,
		Blocks: []navigator.BlockView{{Text: strings.Repeat("lorem ipsum ", 20)}, {Text: strings.Repeat("z", 50)}},
	}

	out := plain(Render(screen, 30, th))
	for _, line := range strings.Split(out, "\n") {
		if lipgloss.Width(line) > 30 {
			t.Fatalf("line wider than 30 columns: %q", line)
		}
	}
}

func TestNotice_Markers(t *testing.T) {
	th := tuitheme.Default()
	tests := map[navigator.Level]string{
		navigator.LevelInfo:  "[+] hi",
		navigator.LevelWarn:  "[*] hi",
		navigator.LevelError: "[!] hi",
	}
	for level, want := range tests {
		if got := plain(Notice(level, "hi", th)); got != want {
			t.Fatalf("level %d: got %q, want %q", level, got, want)
		}
	}
}

func TestRender_NoMenuOutsideMenus(t *testing.T) {
	th := tuitheme.Default()
	for _, st := range []navigator.State{navigator.StateStart, navigator.StateFetch, navigator.StateTerminated} {
		if out := Render(navigator.Screen{State: st}, 80, th); out != "" {
			t.Fatalf("expected empty render for %s, got %q", st, out)
		}
	}
}

func assertViewGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *updateViewGolden {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got+"\n"), 0o644); err != nil {
			t.Fatalf("write golden %s: %v", name, err)
		}
	}
	wantBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", name, err)
	}
	want := strings.TrimRight(string(wantBytes), "\n")
	got = strings.TrimRight(got, "\n")
	if got != want {
		t.Fatalf("golden mismatch for %s\n--- got ---\n%s\n--- want ---\n%s", name, got, want)
	}
}
