package browser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/clipboard"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/state"
)

const firstCommand = "git version"

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg{Code: r, Text: key}
	}
}

type fixture struct {
	clip *clipboard.Memory
	logs *bytes.Buffer
}

func newModel(t *testing.T, lang string) (Model, fixture) {
	t.Helper()
	f := fixture{clip: &clipboard.Memory{}, logs: &bytes.Buffer{}}
	m := New(Options{
		Catalog:   catalog.Default(),
		State:     state.New(lang),
		Clipboard: f.clip,
		Logger:    log.New(f.logs, true, false),
	})
	return m, f
}

// press feeds keys through Update and returns the model and last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyPress(k))
		m = updated.(Model)
	}
	return m, cmd
}

func sectionIDs(m Model) []string {
	var ids []string
	for _, s := range m.Tree().Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestNew_InitialTree(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")

	want := []string{"config", "workflow", "branching", "remote", "inspection", "undo"}
	if diff := cmp.Diff(want, sectionIDs(m)); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	if got := m.Tree().ActiveCategory(); got != catalog.AllCategory {
		t.Errorf("active category = %q, want all", got)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if m.Init() != nil {
		t.Error("Init() should return nil cmd")
	}
}

func TestCategoryNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"tab moves to next", []string{"tab"}, "config"},
		{"shift+tab wraps to last", []string{"shift+tab"}, "undo"},
		{"tab wraps to all", []string{"6", "tab"}, "all"},
		{"digit jumps by position", []string{"3"}, "branching"},
		{"zero jumps to all", []string{"3", "0"}, "all"},
		{"out of range digit ignored", []string{"2", "9"}, "workflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, _ := newModel(t, "en")
			m, _ = press(t, m, tt.keys...)
			if got := m.State().Category; got != tt.want {
				t.Errorf("category = %q, want %q", got, tt.want)
			}
			if got := m.Tree().ActiveCategory(); got != tt.want {
				t.Errorf("active nav item = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "3", "/", "m", "e", "r", "g", "e")

	if !m.search.Focused() {
		t.Fatal("search should be focused after /")
	}
	if got := m.Query(); got != "merge" {
		t.Fatalf("Query() = %q, want merge", got)
	}
	want := []string{"git branch -d <name>", "git branch -D <name>", "git merge <branch>", "git merge --abort"}
	if diff := cmp.Diff(want, m.Tree().Commands()); diff != "" {
		t.Errorf("commands for merge mismatch (-want +got):\n%s", diff)
	}

	// q is text while searching
	m, cmd := press(t, m, "q")
	if cmd != nil && m.quitting {
		t.Fatal("q should not quit while searching")
	}
	if got := m.Query(); got != "mergeq" {
		t.Errorf("Query() = %q, want mergeq", got)
	}
	if m.Tree().NoResults == nil {
		t.Error("expected no results for mergeq")
	}

	// esc leaves the input and keeps the query, second esc clears it
	m, _ = press(t, m, "esc")
	if m.search.Focused() {
		t.Error("esc should blur the search input")
	}
	if got := m.Query(); got != "mergeq" {
		t.Errorf("Query() after first esc = %q, want mergeq", got)
	}
	m, _ = press(t, m, "esc")
	if got := m.Query(); got != "" {
		t.Errorf("Query() after second esc = %q, want empty", got)
	}
	if got := m.State().Category; got != "branching" {
		t.Errorf("category = %q, want branching kept", got)
	}
}

func TestToggleExpansion(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "enter")

	if !m.State().IsExpanded(firstCommand) {
		t.Fatalf("first card should be expanded")
	}
	card, _ := m.Tree().CardAt(0)
	if !card.Expanded {
		t.Error("rendered card should be expanded")
	}

	m, _ = press(t, m, "enter")
	if got := m.State().ExpandedCommands(); len(got) != 0 {
		t.Errorf("toggle twice should restore the empty set, got %v", got)
	}
}

func TestExpandAllRespectsFilter(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "6", "e")

	got := m.State().ExpandedCommands()
	if len(got) != 5 {
		t.Fatalf("expanded %d commands, want the 5 undo commands", len(got))
	}
	if m.State().IsExpanded(firstCommand) {
		t.Error("hidden config command should not be expanded")
	}

	m, _ = press(t, m, "0", "c")
	if n := len(m.State().ExpandedCommands()); n != 0 {
		t.Errorf("collapse all left %d expanded commands", n)
	}
}

func TestCursorMovement(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m, _ = press(t, m, "down", "j", "k")
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = press(t, m, "6")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after category change, want 0", m.cursor)
	}
	for range 10 {
		m, _ = press(t, m, "down")
	}
	if want := m.Tree().CardCount() - 1; m.cursor != want {
		t.Errorf("cursor = %d, want clamped to %d", m.cursor, want)
	}
}

func TestCopy(t *testing.T) {
	t.Parallel()

	m, f := newModel(t, "en")
	m, cmd := press(t, m, "y")

	if cmd == nil {
		t.Fatal("copy should schedule feedback timers")
	}
	if got := f.clip.Text(); got != firstCommand {
		t.Errorf("clipboard = %q, want %q", got, firstCommand)
	}
	if m.toast != "Command copied to clipboard!" {
		t.Errorf("toast = %q", m.toast)
	}
	if m.copied != firstCommand {
		t.Errorf("copied = %q, want %q", m.copied, firstCommand)
	}
	if view := ansi.Strip(m.View().Content); !strings.Contains(view, "Command copied to clipboard!") {
		t.Error("view should show the toast")
	}

	// Retrigger: ticks from the first copy must not clear the feedback.
	firstToast, firstCopied := m.toastGen, m.copiedGen
	m, _ = press(t, m, "y")
	updated, _ := m.Update(toastExpiredMsg{gen: firstToast})
	updated, _ = updated.(Model).Update(copiedExpiredMsg{gen: firstCopied})
	m = updated.(Model)
	if m.toast == "" || m.copied == "" {
		t.Fatal("stale ticks cleared the feedback")
	}

	updated, _ = m.Update(toastExpiredMsg{gen: m.toastGen})
	updated, _ = updated.(Model).Update(copiedExpiredMsg{gen: m.copiedGen})
	m = updated.(Model)
	if m.toast != "" || m.copied != "" {
		t.Errorf("current ticks should clear feedback, toast=%q copied=%q", m.toast, m.copied)
	}
	if got := f.clip.Writes(); got != 2 {
		t.Errorf("clipboard writes = %d, want 2", got)
	}
}

func TestCopyFailure(t *testing.T) {
	t.Parallel()

	m, f := newModel(t, "en")
	f.clip.Err = errors.New("no clipboard")
	m, cmd := press(t, m, "y")

	if cmd != nil {
		t.Error("failed copy should not schedule timers")
	}
	if m.toast != "" || m.copied != "" {
		t.Errorf("failed copy changed feedback: toast=%q copied=%q", m.toast, m.copied)
	}
	if !strings.Contains(f.logs.String(), "clipboard write failed") {
		t.Errorf("failure not logged, logs = %q", f.logs.String())
	}
}

func TestToggleLanguage(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "3", "e", "/", "g", "i", "t", "esc", "L")

	st := m.State()
	if st.Language != "gu" {
		t.Fatalf("language = %q, want gu", st.Language)
	}
	if st.Category != "branching" {
		t.Errorf("category = %q, want branching kept", st.Category)
	}
	if got := m.Query(); got != "git" {
		t.Errorf("Query() = %q, want git kept across the switch", got)
	}
	if len(st.ExpandedCommands()) == 0 {
		t.Error("expansion should survive a language switch")
	}
	if got := m.Tree().Header.Title; got != "Git Commands Portal" {
		t.Errorf("header title = %q", got)
	}
	if got := m.Tree().Header.LangButton; got != "English" {
		t.Errorf("lang button = %q, want English", got)
	}

	// gu lists the categories but has no sections translated yet
	if m.Tree().NoResults == nil || len(m.Tree().Sections) != 0 {
		t.Fatalf("gu branching should render the no-results placeholder, sections = %v", sectionIDs(m))
	}
	if got := m.Tree().NoResults.Title; got != "કોઈ કમાન્ડ મળ્યો નથી" {
		t.Errorf("no-results title = %q", got)
	}

	m, _ = press(t, m, "L")
	if got := m.State().Language; got != "en" {
		t.Errorf("language = %q, want en", got)
	}
	if got := m.Query(); got != "git" {
		t.Errorf("Query() = %q after switching back, want git", got)
	}
	if diff := cmp.Diff([]string{"branching"}, sectionIDs(m)); diff != "" {
		t.Errorf("en sections mismatch (-want +got):\n%s", diff)
	}
	for _, cmd := range m.Tree().Commands() {
		if !strings.Contains(cmd, "git") {
			t.Errorf("command %q does not match the kept query", cmd)
		}
	}
	if got := len(m.Tree().Commands()); got != 10 {
		t.Errorf("en branching commands = %d, want 10", got)
	}
}

func TestUnknownCategoryShowsError(t *testing.T) {
	t.Parallel()

	m := New(Options{
		Catalog:   catalog.Default(),
		State:     state.New("en").SelectCategory("stash"),
		Clipboard: &clipboard.Memory{},
	})
	nr := m.Tree().NoResults
	if nr == nil {
		t.Fatal("expected no-results slot")
	}
	if !strings.Contains(nr.Hint, `category "stash"`) {
		t.Errorf("hint = %q, want the lookup error", nr.Hint)
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			t.Parallel()
			m, _ := newModel(t, "en")
			m, cmd := press(t, m, k)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected tea.QuitMsg")
			}
			if got := m.View().Content; got != "" {
				t.Errorf("view after quit = %q, want empty", got)
			}
		})
	}
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.viewport.Width() != 100 {
		t.Errorf("viewport width = %d, want 100", m.viewport.Width())
	}
	if h := m.viewport.Height(); h <= 0 || h >= 40 {
		t.Errorf("viewport height = %d, want between header/footer chrome and 40", h)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	view := ansi.Strip(m.View().Content)
	for _, want := range []string{"Git Commands Portal", "0 All Commands", "01. Configuration & Setup", "copy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, "en")
	m, _ = press(t, m, "?")
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
	if view := ansi.Strip(m.View().Content); !strings.Contains(view, "collapse all") {
		t.Error("full help should list collapse all")
	}
}
