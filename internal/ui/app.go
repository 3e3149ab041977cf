package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/softglow/foyer/internal/assets"
	"github.com/softglow/foyer/internal/content"
	"github.com/softglow/foyer/internal/prefs"
	"github.com/softglow/foyer/internal/steam"
)

// phase is the page lifecycle state.
type phase int

const (
	phaseLoading phase = iota
	phaseReady
	phaseFailed
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Loader   content.Loader
	Assets   *assets.Cache
	Resolver *steam.Resolver

	Prefs     prefs.Prefs
	PrefsPath string
	// ThemeName overrides the stored theme for this session only.
	ThemeName string

	// InitialModal opens a modal on load, the fragment deep link.
	InitialModal string
	EagerImages  int
	ImageWait    time.Duration
}

// Model is the root application state for Bubble Tea. It is the
// bootstrap sequencer: theme before first paint, fetch behind a
// spinner, renderers on arrival, reveal only after above-the-fold
// image settlement, and a reveal guaranteed on every path.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    content.Loader
	assets    *assets.Cache
	resolver  *steam.Resolver
	keys      keyMap
	prefs     prefs.Prefs
	prefsPath string

	// UI state
	theme  Theme
	styles Styles
	width  int
	height int
	sized  bool

	// Lifecycle
	phase        phase
	bootstrapped bool // one-shot latch: duplicate boot signals no-op
	revealed     bool
	pass         int // render pass generation; stale async results drop

	spinner  spinner.Model
	viewport viewport.Model

	// Data state
	doc     *content.Document
	loadErr error

	// Page state
	body     bodyView
	focusIdx int

	// Modal state
	modals        modalStack
	initialModal  string
	restoreModals []string

	// Image state
	eager        map[string]bool
	pendingEager int
	eagerCount   int
	imageWait    time.Duration

	// Handoff state: single slot, a new attempt replaces the old one.
	handoffSignal chan struct{}

	showHelp bool
	status   string
}

const (
	defaultImageWait = 2 * time.Second
	statusBarHeight  = 1
)

// New creates the root model. The persisted theme is resolved here so
// even the loading frame paints themed.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}
	theme := GetTheme(prefs.NormalizeTheme(themeName))

	imageWait := opts.ImageWait
	if imageWait <= 0 {
		imageWait = defaultImageWait
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Styles().AccentText),
	)

	return Model{
		ctx:          ctx,
		loader:       opts.Loader,
		assets:       opts.Assets,
		resolver:     opts.Resolver,
		keys:         DefaultKeyMap(),
		prefs:        opts.Prefs,
		prefsPath:    opts.PrefsPath,
		theme:        theme,
		styles:       theme.Styles(),
		phase:        phaseLoading,
		spinner:      sp,
		initialModal: opts.InitialModal,
		eagerCount:   opts.EagerImages,
		imageWait:    imageWait,
		focusIdx:     -1,
	}
}

// Messages

type bootMsg struct{}

type docMsg struct {
	pass int
	doc  *content.Document
}

type docErrMsg struct {
	pass int
	err  error
}

type imageMsg struct {
	pass int
	url  string
	err  error
}

type revealTimeoutMsg struct{ pass int }

type handoffMsg struct {
	url     string
	outcome steam.Outcome
	err     error
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return bootMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bootMsg:
		if m.bootstrapped {
			return m, nil
		}
		m.bootstrapped = true
		return m, m.loadCmd()

	case docMsg:
		if msg.pass != m.pass {
			return m, nil
		}
		return m.handleDocument(msg.doc)

	case docErrMsg:
		if msg.pass != m.pass {
			return m, nil
		}
		// The pipeline aborts, but the page still resolves into a
		// visible failure view rather than hanging on the spinner.
		m.loadErr = msg.err
		m.phase = phaseFailed
		m.revealed = true
		log.Printf("content load failed: %v", msg.err)
		return m, nil

	case imageMsg:
		if msg.pass != m.pass {
			return m, nil
		}
		return m.handleImage(msg)

	case revealTimeoutMsg:
		if msg.pass != m.pass || m.revealed {
			return m, nil
		}
		log.Printf("reveal: %d above-the-fold images still pending at deadline", m.pendingEager)
		return m.reveal()

	case handoffMsg:
		m.handoffSignal = nil
		switch {
		case msg.err != nil:
			log.Printf("steam handoff failed: %v", msg.err)
			m.status = "could not open link"
		case msg.outcome == steam.OutcomeAccepted:
			m.status = "opened in Steam"
		case msg.outcome == steam.OutcomeFallback:
			m.status = "opened in browser"
		case msg.outcome == steam.OutcomeWebDirect:
			m.status = "opened in browser"
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.sized {
			m.viewport = viewport.New(msg.Width, m.pageHeight())
		}
		m.sized = true
		m.layout()
		m.rebuild()
		return m, m.fetchVisibleCmd()

	case tea.BlurMsg:
		// The terminal losing focus is the "another application took
		// over" signal the pending handoff is waiting for.
		if m.handoffSignal != nil {
			select {
			case m.handoffSignal <- struct{}{}:
			default:
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleDocument runs the renderers for a freshly loaded document and
// arms the above-the-fold image wait.
func (m Model) handleDocument(doc *content.Document) (tea.Model, tea.Cmd) {
	m.doc = doc
	m.loadErr = nil
	m.modals.CloseAll()
	m.focusIdx = -1

	var cmds []tea.Cmd
	if cmd := applyMetaCmd(doc); cmd != nil {
		cmds = append(cmds, cmd)
	}

	// Pre-compute the eager set before any rendering.
	m.eager = make(map[string]bool)
	m.pendingEager = 0
	if m.assets != nil {
		for _, u := range eagerAssets(doc, m.eagerCount, m.assets) {
			m.eager[u] = true
			if m.assets.Begin(u) {
				m.pendingEager++
				cmds = append(cmds, m.fetchImageCmd(u))
			}
		}
	}

	// Fragment deep link: programmatic opens replace, never push.
	if m.initialModal != "" {
		m.modals.Open(doc, m.initialModal, false, -1)
		m.initialModal = ""
	}
	for _, id := range m.restoreModals {
		m.modals.Open(doc, id, false, -1)
	}
	m.restoreModals = nil

	m.rebuild()

	if m.pendingEager == 0 {
		model, cmd := m.reveal()
		return model, tea.Batch(append(cmds, cmd)...)
	}
	pass := m.pass
	cmds = append(cmds, tea.Tick(m.imageWait, func(time.Time) tea.Msg {
		return revealTimeoutMsg{pass: pass}
	}))
	return m, tea.Batch(cmds...)
}

func (m Model) handleImage(msg imageMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("image %s failed: %v", msg.url, msg.err)
	}
	m.rebuild()

	if !m.revealed && m.eager[msg.url] {
		m.pendingEager--
		if m.pendingEager <= 0 {
			return m.reveal()
		}
	}
	return m, nil
}

// reveal flips the page from loading to ready exactly once. Settlement
// counts successes and failures alike.
func (m Model) reveal() (tea.Model, tea.Cmd) {
	m.revealed = true
	if m.phase != phaseFailed {
		m.phase = phaseReady
	}
	m.rebuild()
	return m, m.fetchVisibleCmd()
}

// Commands

func (m *Model) loadCmd() tea.Cmd {
	pass := m.pass
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		doc, err := loader.Load(ctx)
		if err != nil {
			return docErrMsg{pass: pass, err: err}
		}
		return docMsg{pass: pass, doc: doc}
	}
}

func (m *Model) fetchImageCmd(assetURL string) tea.Cmd {
	pass := m.pass
	cache := m.assets
	ctx := m.ctx
	return func() tea.Msg {
		_, err := cache.Fetch(ctx, assetURL)
		return imageMsg{pass: pass, url: assetURL, err: err}
	}
}

// fetchVisibleCmd starts fetches for deferred images whose placeholder
// lines are near the viewport. Eagerly loaded images were already
// claimed, so Begin filters them out.
func (m *Model) fetchVisibleCmd() tea.Cmd {
	if !m.revealed || m.assets == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, u := range visibleAssets(m.body.images, m.viewport.YOffset, m.viewport.Height) {
		if m.assets.Begin(u) {
			cmds = append(cmds, m.fetchImageCmd(u))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handoffCmd launches the resolver for a Steam-capable URL. The signal
// channel is a single slot; starting a new attempt abandons the old
// channel, whose late signals then go nowhere.
func (m *Model) handoffCmd(rawURL string) tea.Cmd {
	sig := make(chan struct{}, 1)
	m.handoffSignal = sig
	resolver := m.resolver
	ctx := m.ctx
	return func() tea.Msg {
		outcome, err := resolver.Resolve(ctx, rawURL, sig)
		return handoffMsg{url: rawURL, outcome: outcome, err: err}
	}
}

// Input handling

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// An open modal suspends the page behind it: only close and quit
	// keys reach through.
	if m.modals.Top() != nil {
		if key.Matches(msg, m.keys.Escape) {
			m.closeTopModal()
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Reload):
		return m.reload()

	case key.Matches(msg, m.keys.DismissNotice):
		return m.dismissNotice()
	}

	if m.phase != phaseReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTarget):
		m.moveFocus(1)
		return m, m.fetchVisibleCmd()

	case key.Matches(msg, m.keys.PrevTarget):
		m.moveFocus(-1)
		return m, m.fetchVisibleCmd()

	case key.Matches(msg, m.keys.Activate):
		return m.activateFocused()

	case key.Matches(msg, m.keys.OpenWeb):
		return m.openFocusedInBrowser()

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	}

	return m, m.fetchVisibleCmd()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if top := m.modals.Top(); top != nil {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			modal := m.doc.Modal(top.id)
			if modal != nil {
				x0, y0, x1, y1 := modalBounds(modal, m.styles, m.width, m.pageHeight())
				if msg.X < x0 || msg.X >= x1 || msg.Y < y0 || msg.Y >= y1 {
					m.closeTopModal()
				}
			}
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
	}
	return m, m.fetchVisibleCmd()
}

// Actions

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	name := NextTheme(m.theme.Name)
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.spinner.Style = m.styles.AccentText
	m.status = "theme: " + name

	m.prefs.Theme = name
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		// Storage unavailable: the choice lives for this session only.
		log.Printf("theme preference not persisted: %v", err)
	}

	m.rebuild()
	return m, nil
}

// reload starts a fresh render pass: new document, new counters, asset
// outcomes forgotten. Open modals are restored only if their ids still
// exist in the new document.
func (m Model) reload() (tea.Model, tea.Cmd) {
	if !m.bootstrapped {
		return m, nil
	}
	m.pass++
	m.phase = phaseLoading
	m.revealed = false
	m.loadErr = nil
	m.pendingEager = 0
	m.eager = nil
	m.status = ""

	m.restoreModals = m.restoreModals[:0]
	for _, om := range m.modals.open {
		m.restoreModals = append(m.restoreModals, om.id)
	}
	m.modals.CloseAll()

	if m.assets != nil {
		m.assets.Reset()
	}
	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) dismissNotice() (tea.Model, tea.Cmd) {
	if m.doc == nil || !noticeVisible(m.doc.CookieNotice, m.prefs.NoticeDismissed) {
		return *m, nil
	}
	m.prefs.NoticeDismissed = true
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("notice dismissal not persisted: %v", err)
	}
	m.layout()
	m.rebuild()
	return *m, nil
}

func (m *Model) moveFocus(delta int) {
	n := len(m.body.targets)
	if n == 0 {
		return
	}
	m.focusIdx += delta
	switch {
	case m.focusIdx >= n:
		m.focusIdx = 0
	case m.focusIdx < 0:
		m.focusIdx = n - 1
	}
	m.rebuild()
	m.scrollToFocus()
}

func (m *Model) scrollToFocus() {
	if m.focusIdx < 0 || m.focusIdx >= len(m.body.targets) {
		return
	}
	line := m.body.targets[m.focusIdx].line
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	switch {
	case line < top:
		m.viewport.SetYOffset(max(line-1, 0))
	case line > bottom:
		m.viewport.SetYOffset(line - m.viewport.Height + 2)
	}
}

// activateFocused performs the focused target's action: fragment links
// open modals (a user-initiated open, pushed), Steam-capable URLs go
// through the resolver, and link-less items are focusable but inert.
func (m Model) activateFocused() (tea.Model, tea.Cmd) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.body.targets) {
		return m, nil
	}
	t := m.body.targets[m.focusIdx]
	rawURL := strings.TrimSpace(t.url)
	if rawURL == "" {
		return m, nil
	}
	if strings.HasPrefix(rawURL, "#") {
		if m.modals.Open(m.doc, strings.TrimPrefix(rawURL, "#"), true, m.focusIdx) {
			m.rebuild()
		}
		return m, nil
	}
	m.status = "opening " + t.label + "…"
	return m, m.handoffCmd(rawURL)
}

// openFocusedInBrowser always opens the plain web URL, bypassing the
// protocol attempt, the keyboard analogue of open-in-new-tab.
func (m Model) openFocusedInBrowser() (tea.Model, tea.Cmd) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.body.targets) {
		return m, nil
	}
	rawURL := strings.TrimSpace(m.body.targets[m.focusIdx].url)
	if rawURL == "" || strings.HasPrefix(rawURL, "#") {
		return m, nil
	}
	if err := m.resolver.OpenWeb(rawURL); err != nil {
		log.Printf("open %s: %v", rawURL, err)
		m.status = "could not open link"
		return m, nil
	}
	m.status = "opened in browser"
	return m, nil
}

func (m *Model) closeTopModal() {
	prevFocus, ok := m.modals.Close()
	if !ok {
		return
	}
	if prevFocus >= -1 && prevFocus < len(m.body.targets) {
		m.focusIdx = prevFocus
	}
	m.rebuild()
}

// Layout and rendering

func (m *Model) layout() {
	m.viewport.Width = m.width
	m.viewport.Height = m.pageHeight()
}

// pageHeight is the content region height: total minus status bar and
// the notice banner when visible.
func (m *Model) pageHeight() int {
	h := m.height - statusBarHeight
	if m.doc != nil && noticeVisible(m.doc.CookieNotice, m.prefs.NoticeDismissed) {
		h -= lipgloss.Height(renderNotice(m.doc.CookieNotice, m.styles, m.width))
	}
	return max(h, 1)
}

// rebuild re-renders the body and refreshes the viewport content.
func (m *Model) rebuild() {
	if !m.sized || m.doc == nil {
		return
	}
	m.layout()
	m.body = renderBody(m.doc, m.styles, m.width, m.assets, m.focusIdx)
	if n := len(m.body.targets); m.focusIdx >= n {
		m.focusIdx = n - 1
	}
	m.viewport.SetContent(m.body.content)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.sized {
		return "Loading..."
	}

	var page string
	switch {
	case m.showHelp:
		page = m.renderHelp()
	case m.phase == phaseLoading:
		page = m.renderLoading()
	case m.phase == phaseFailed:
		page = m.renderFailure()
	default:
		if top := m.modals.Top(); top != nil {
			if modal := m.doc.Modal(top.id); modal != nil {
				page = renderModalOverlay(modal, m.styles, m.width, m.pageHeight())
			}
		}
		if page == "" {
			page = m.viewport.View()
		}
	}

	var b strings.Builder
	b.WriteString(page)
	b.WriteString("\n")
	if m.doc != nil && noticeVisible(m.doc.CookieNotice, m.prefs.NoticeDismissed) {
		b.WriteString(renderNotice(m.doc.CookieNotice, m.styles, m.width))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderLoading is the loading indicator region: a themed spinner that
// is on screen from the very first frame.
func (m Model) renderLoading() string {
	line := m.spinner.View() + " " + m.styles.MutedText.Render("Loading…")
	return lipgloss.Place(m.width, m.pageHeight(), lipgloss.Center, lipgloss.Center, line)
}

func (m Model) renderFailure() string {
	msg := "The page could not be loaded."
	if m.loadErr != nil {
		msg = truncate(m.loadErr.Error(), max(m.width-4, 10))
	}
	body := m.styles.DangerText.Render("Something went wrong") + "\n\n" +
		m.styles.MutedText.Render(msg) + "\n\n" +
		m.styles.FaintText.Render("r to retry · q to quit")
	return lipgloss.Place(m.width, m.pageHeight(), lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderHelp() string {
	var rows []string
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			rows = append(rows, m.styles.AccentText.Render(padRight(h.Key, 12))+m.styles.Text.Render(h.Desc))
		}
		rows = append(rows, "")
	}
	body := m.styles.Title.Render("Keys") + "\n\n" + strings.Join(rows, "\n")
	return lipgloss.Place(m.width, m.pageHeight(), lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderStatusBar() string {
	left := "foyer"
	if title := metaTitle(m.doc); title != "" {
		left = truncate(title, max(m.width/3, 8))
	}

	parts := []string{left}
	if frag := m.modals.Fragment(); frag != "" {
		parts = append(parts, "#"+frag)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.theme.Name, "? help")

	return m.styles.StatusBar.Width(m.width).Render(strings.Join(filterStrings(parts), "  ·  "))
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Run starts the Bubble Tea program. Focus reporting feeds the handoff
// heuristic; mouse mode feeds modal outside-click dismissal.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
