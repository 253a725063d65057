package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/clipboard"
	"github.com/raphi011/gitref/internal/config"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/render"
	"github.com/raphi011/gitref/internal/state"
	"github.com/raphi011/gitref/internal/ui/styles"
)

// Options configures a browser session.
type Options struct {
	Catalog        *catalog.Catalog
	State          state.ViewState
	Query          string
	Clipboard      clipboard.Writer
	Logger         *log.Logger
	ToastDuration  time.Duration
	CopiedDuration time.Duration
}

type toastExpiredMsg struct{ gen int }

type copiedExpiredMsg struct{ gen int }

// Model is the bubbletea model of the browser.
type Model struct {
	cat  *catalog.Catalog
	loc  *catalog.Locale
	st   state.ViewState
	tree render.Tree

	search   textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	clip   clipboard.Writer
	logger *log.Logger

	cursor    int
	cardLines []lineSpan // viewport line range of each card

	toast     string
	toastGen  int
	copied    string // command showing the checkmark
	copiedGen int
	toastDur  time.Duration
	copiedDur time.Duration

	width    int
	height   int
	quitting bool
}

// New creates a browser model showing opts.State filtered by opts.Query.
func New(opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System{}
	}
	if opts.Logger == nil {
		opts.Logger = log.FromContext(context.Background())
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = config.DefaultToastDuration
	}
	if opts.CopiedDuration <= 0 {
		opts.CopiedDuration = config.DefaultCopiedDuration
	}

	ti := textinput.New()
	ti.Prompt = styles.CurrentSymbols().Search + " "
	ti.CharLimit = 80
	ti.SetValue(opts.Query)

	m := Model{
		cat:       opts.Catalog,
		st:        opts.State,
		search:    ti,
		viewport:  viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		help:      help.New(),
		keys:      defaultKeyMap(),
		clip:      opts.Clipboard,
		logger:    opts.Logger,
		toastDur:  opts.ToastDuration,
		copiedDur: opts.CopiedDuration,
		width:     80,
		height:    24,
	}
	m.refresh()
	return m
}

// Run starts the full-screen browser and blocks until the user quits.
// The TUI renders to stderr so stdout stays untouched.
func Run(ctx context.Context, opts Options) error {
	profile := colorprofile.Detect(os.Stderr, os.Environ())

	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// State returns the current view state.
func (m Model) State() state.ViewState {
	return m.st
}

// Tree returns the currently rendered tree.
func (m Model) Tree() render.Tree {
	return m.tree
}

// Query returns the live search text.
func (m Model) Query() string {
	return m.search.Value()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.SetWidth(max(msg.Width-4, 10))
		m.resize()
		m.repaint()
		return m, nil

	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
			m.resize()
		}
		return m, nil

	case copiedExpiredMsg:
		if msg.gen == m.copiedGen {
			m.copied = ""
			m.repaint()
		}
		return m, nil

	case tea.KeyPressMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	case "tab", "shift+tab":
		return m.updateBrowse(msg)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.viewport.GotoTop()
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.search.Value() != "" {
			m.search.Reset()
			m.cursor = 0
			m.refresh()
		}

	case key.Matches(msg, m.keys.NextCategory):
		m.selectCategory(m.navIndex() + 1)

	case key.Matches(msg, m.keys.PrevCategory):
		m.selectCategory(m.navIndex() - 1)

	case key.Matches(msg, m.keys.Jump):
		if n := int(msg.String()[0] - '0'); n < len(m.tree.Nav) {
			m.selectCategory(n)
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.repaint()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.tree.CardCount()-1 {
			m.cursor++
			m.repaint()
		}

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.cursorToViewport()

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		m.cursorToViewport()

	case key.Matches(msg, m.keys.Toggle):
		if card, ok := m.tree.CardAt(m.cursor); ok {
			m.st = m.st.ToggleExpansion(card.Command)
			m.refresh()
		}

	case key.Matches(msg, m.keys.ExpandAll):
		m.st = m.st.ExpandAll(m.tree.Commands())
		m.refresh()

	case key.Matches(msg, m.keys.CollapseAll):
		m.st = m.st.CollapseAll()
		m.refresh()

	case key.Matches(msg, m.keys.Copy):
		if card, ok := m.tree.CardAt(m.cursor); ok {
			return m.copy(card.Command)
		}

	case key.Matches(msg, m.keys.Language):
		m.st = m.st.ToggleLanguage(m.cat)
		m.refresh()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		m.repaint()
	}

	return m, nil
}

// copy writes command to the clipboard and (re)starts both feedback timers.
func (m Model) copy(command string) (tea.Model, tea.Cmd) {
	if err := m.clip.WriteAll(command); err != nil {
		m.logger.Debug("clipboard write failed", "command", command, "err", err)
		return m, nil
	}
	m.logger.Debug("copied", "command", command)

	m.toastGen++
	m.copiedGen++
	m.toast = m.loc.CopiedToast
	m.copied = command
	m.resize()
	m.repaint()

	toastGen, copiedGen := m.toastGen, m.copiedGen
	return m, tea.Batch(
		tea.Tick(m.toastDur, func(time.Time) tea.Msg { return toastExpiredMsg{gen: toastGen} }),
		tea.Tick(m.copiedDur, func(time.Time) tea.Msg { return copiedExpiredMsg{gen: copiedGen} }),
	)
}

func (m Model) navIndex() int {
	for i, n := range m.tree.Nav {
		if n.Active {
			return i
		}
	}
	return 0
}

// selectCategory activates the nav item at i, wrapping around both ends.
func (m *Model) selectCategory(i int) {
	n := len(m.tree.Nav)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	m.st = m.st.SelectCategory(m.tree.Nav[i].ID)
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
}

// refresh re-runs filter and render for the current state and query.
func (m *Model) refresh() {
	loc, err := m.cat.Locale(m.st.Language)
	if err != nil {
		// Only reachable with a state built outside the browser.
		m.logger.Debug("unknown language", "lang", m.st.Language, "err", err)
		m.st.Language = m.cat.Languages()[0]
		loc, _ = m.cat.Locale(m.st.Language)
	}
	m.loc = loc
	m.search.Placeholder = loc.SearchPlaceholder

	tree, err := render.Build(m.cat, m.st, m.search.Value())
	if err != nil {
		tree = render.Render(loc, nil, m.st)
		tree.NoResults.Hint = err.Error()
	}
	m.tree = tree

	if n := m.tree.CardCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.resize()
	m.repaint()
}

// resize fits the viewport between the fixed header and footer.
func (m *Model) resize() {
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(max(m.height-chrome, 3))
}

// repaint repaints the card list and keeps the cursor card in view.
func (m *Model) repaint() {
	body, spans := m.paintBody()
	m.cardLines = spans
	m.viewport.SetContent(body)
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.cursor < 0 || m.cursor >= len(m.cardLines) {
		return
	}
	span := m.cardLines[m.cursor]
	top := m.viewport.YOffset()
	height := m.viewport.Height()
	switch {
	case span.start < top:
		m.viewport.SetYOffset(span.start)
	case span.end >= top+height:
		m.viewport.SetYOffset(span.end - height + 1)
	}
}

// cursorToViewport moves the cursor to the first card starting inside the
// visible window after a page scroll.
func (m *Model) cursorToViewport() {
	top := m.viewport.YOffset()
	for i, span := range m.cardLines {
		if span.start >= top {
			m.cursor = i
			break
		}
	}
	body, spans := m.paintBody()
	m.cardLines = spans
	m.viewport.SetContent(body)
}
