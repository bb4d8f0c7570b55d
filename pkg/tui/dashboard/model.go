// Package dashboard is the full-screen writing dashboard: statistics, rank
// progress and the month calendar.
package dashboard

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/writersblock/pkg/analytics"
	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/calendar"
	"tableflip.dev/writersblock/pkg/prompt"
	"tableflip.dev/writersblock/pkg/store"
	"tableflip.dev/writersblock/pkg/timeutil"
	"tableflip.dev/writersblock/pkg/tui/components/help"
	"tableflip.dev/writersblock/pkg/tui/components/panel"
	"tableflip.dev/writersblock/pkg/tui/theme"
)

//go:embed help.md
var helpMarkdown string

const (
	barWidth     = 24
	tickInterval = time.Minute
)

type mode int

const (
	modeNormal mode = iota
	modeWrite
	modeHelp
)

type loadedMsg struct {
	report app.Report
	dates  calendar.DateSet
	theme  prompt.Theme
	dark   bool
	err    error
}

type changeMsg struct {
	change app.Change
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type tickMsg time.Time

type savedMsg struct {
	title   string
	words   int
	reached bool
	err     error
}

// Model is the dashboard's Bubble Tea model.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	theme theme.Theme
	keys  keyMap
	rand  *rand.Rand

	width  int
	height int
	mode   mode

	month   calendar.Month
	dates   calendar.DateSet
	report  app.Report
	loaded  bool
	ptheme  prompt.Theme
	dark    bool
	prompt  string
	status  string
	err     error
	input   textinput.Model
	help    *help.Model
	changes chan app.Change

	unsubscribe func()
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// Options tweak the dashboard. The zero value is ready to use.
type Options struct {
	Theme *theme.Theme
	Rand  *rand.Rand
}

// New constructs the dashboard over svc.
func New(ctx context.Context, svc *app.Service, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	input := textinput.New()
	input.Placeholder = "Write a few words…"
	input.Prompt = "✎ "

	return &Model{
		svc:     svc,
		ctx:     ctx,
		theme:   th,
		keys:    defaultKeys(),
		rand:    r,
		month:   calendar.MonthOf(svc.Clock()),
		ptheme:  prompt.ThemeAll,
		input:   input,
		changes: make(chan app.Change, 1),
	}
}

// Run launches the Bubble Tea program that renders the dashboard.
func Run(ctx context.Context, svc *app.Service) error {
	m := New(ctx, svc, Options{})
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.unsubscribe = m.svc.Subscribe(func(c app.Change) {
		select {
		case m.changes <- c:
		default:
			// A reload is already queued.
		}
	})
	return tea.Batch(m.load(), m.waitForChange(), startWatchCmd(m.ctx, m.svc), tick())
}

// Close releases the change subscription and the store watch.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.stopWatch()
}

func (m *Model) load() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		rep, err := svc.Report(ctx, timeutil.AllTime())
		if err != nil {
			return loadedMsg{err: err}
		}
		dates, err := svc.DateSet(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		prefs, err := svc.Settings(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{report: rep, dates: dates, theme: prefs.PromptTheme, dark: prefs.DarkMode}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		return changeMsg{change: <-ch}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) save(text string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		e, err := svc.CreateEntry(ctx, app.NewEntry{Text: text})
		if err != nil || e == nil {
			return savedMsg{err: err}
		}
		days, err := svc.GoalDays(ctx)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{title: e.Title, words: e.WordCount, reached: len(days) > 0 && days[0].Achieved}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		if m.help != nil {
			m.help.SetSize(m.helpSize())
		}
	case loadedMsg:
		m.err = v.err
		if v.err == nil {
			m.report = v.report
			m.dates = v.dates
			m.ptheme = v.theme
			m.dark = v.dark
			m.loaded = true
			if m.prompt == "" {
				m.prompt = prompt.Random(m.ptheme, m.rand)
			}
		}
	case changeMsg:
		cmds = append(cmds, m.load(), m.waitForChange())
	case watchStartedMsg:
		if v.err != nil {
			if !errors.Is(v.err, store.ErrWatchUnsupported) {
				m.status = "watch unavailable: " + v.err.Error()
			}
			break
		}
		m.watchCh = v.ch
		m.watchCancel = v.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		cmds = append(cmds, m.load(), m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case tickMsg:
		if m.svc.Rollover(time.Time(v)) {
			cmds = append(cmds, m.load())
		}
		cmds = append(cmds, tick())
	case savedMsg:
		switch {
		case v.err != nil:
			m.err = v.err
		case v.title == "":
			m.status = "Nothing to save."
		case v.reached && !m.reachedToday():
			m.status = fmt.Sprintf("Saved %d words. Daily goal reached!", v.words)
		default:
			m.status = fmt.Sprintf("Saved %d words.", v.words)
		}
		cmds = append(cmds, m.load())
	case tea.KeyPressMsg:
		cmd, quit := m.handleKey(v)
		if quit {
			m.Close()
			return m, tea.Quit
		}
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch m.mode {
	case modeWrite:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.input.Blur()
			m.input.SetValue("")
			m.mode = modeNormal
			return nil, false
		case key.Matches(msg, m.keys.Submit):
			text := m.input.Value()
			m.input.Blur()
			m.input.SetValue("")
			m.mode = modeNormal
			return m.save(text), false
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd, false
	case modeHelp:
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel), msg.String() == "q":
			m.mode = modeNormal
			return nil, false
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Prev):
		m.month = m.month.Prev()
	case key.Matches(msg, m.keys.Next):
		m.month = m.month.Next()
	case key.Matches(msg, m.keys.Today):
		m.month = calendar.MonthOf(m.svc.Clock())
	case key.Matches(msg, m.keys.Prompt):
		m.prompt = prompt.Random(m.ptheme, m.rand)
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m.load(), false
	case key.Matches(msg, m.keys.Write):
		m.mode = modeWrite
		m.status = ""
		return m.input.Focus(), false
	case key.Matches(msg, m.keys.Help):
		style := "light"
		if m.dark {
			style = "dark"
		}
		if m.help == nil {
			m.help = help.New("writersblock", helpMarkdown, style, m.theme.Modal)
		}
		m.help.SetStyle(style)
		m.help.SetSize(m.helpSize())
		m.mode = modeHelp
	}
	return nil, false
}

func (m *Model) reachedToday() bool {
	return m.loaded && m.report.Today >= m.report.Goal
}

func (m *Model) helpSize() (int, int) {
	w, h := m.width-4, m.height-4
	if w <= 0 {
		w = 60
	}
	if h <= 0 {
		h = 20
	}
	return w, h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		return m.help.View()
	}

	var sections []string
	switch {
	case m.err != nil:
		msg := m.err.Error()
		if app.IsCorrupt(m.err) {
			msg += "\nRun `writersblock repair` to move the unreadable data aside."
		}
		sections = append(sections, m.theme.Footer.Error.Render(msg))
	case !m.loaded:
		sections = append(sections, m.theme.Footer.Status.Render("Loading…"))
	default:
		stats := m.statsPanel()
		rank := m.rankPanel()
		var top string
		if m.width > 0 && lipgloss.Width(stats)+lipgloss.Width(rank)+1 > m.width {
			top = lipgloss.JoinVertical(lipgloss.Left, stats, rank)
		} else {
			top = lipgloss.JoinHorizontal(lipgloss.Top, stats, " ", rank)
		}
		sections = append(sections, top, m.calendarPanel())
		if m.prompt != "" {
			sections = append(sections, m.theme.Stats.Muted.Render(wordwrap.String("Prompt: "+m.prompt, m.wrapWidth())))
		}
	}
	sections = append(sections, m.footer())
	return strings.Join(sections, "\n")
}

func (m *Model) wrapWidth() int {
	if m.width > 0 && m.width < 80 {
		return m.width
	}
	return 80
}

func (m *Model) statsPanel() string {
	s := m.report.Summary
	st := m.theme.Stats
	today := panel.Row{Label: "Today", Value: fmt.Sprintf("%d / %d", m.report.Today, m.report.Goal)}
	if m.reachedToday() {
		today.Mark = st.Reached.Render("✓")
	}
	p := panel.New(m.theme.Panel)
	p.SetRows("Stats", []panel.Row{
		{Label: "Total words", Value: fmt.Sprint(s.TotalWords)},
		{Label: "Pages", Value: fmt.Sprint(s.TotalPages)},
		{Label: "Entries", Value: fmt.Sprint(s.Entries)},
		{Label: "Streak", Value: fmt.Sprint(s.Streak)},
		{Label: "Avg words/day", Value: fmt.Sprint(s.AverageWordsPerDay)},
		{Label: "Word record", Value: fmt.Sprint(s.WordRecord)},
		{Label: "Avg goal time", Value: s.AverageGoalTime},
		today,
	}, st.Label, st.Value)
	return p.View()
}

func (m *Model) rankPanel() string {
	s := m.report.Summary
	st := m.theme.Stats
	lines := []string{st.Rank.Render(s.Rank), progressBar(s.Progress, st)}
	if s.NextRank == analytics.MaxRankReached {
		lines = append(lines, st.Muted.Render(analytics.MaxRankReached))
	} else {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("%d words to %s", s.WordsUntilNextRank, s.NextRank)))
	}
	lines = append(lines, "")
	lines = append(lines, strings.Split(wordwrap.String(s.Comparison, barWidth+8), "\n")...)

	p := panel.New(m.theme.Panel)
	p.SetContent("Rank", lines)
	return p.View()
}

func progressBar(progress float64, st theme.StatsTheme) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	full := int(progress*barWidth + 0.5)
	return st.BarFull.Render(strings.Repeat("█", full)) +
		st.BarEmpty.Render(strings.Repeat("░", barWidth-full)) +
		st.Muted.Render(fmt.Sprintf(" %3.0f%%", progress*100))
}

func (m *Model) calendarPanel() string {
	today := m.svc.Clock()
	grid := m.month.Grid(m.dates, today)
	opts := m.theme.Calendar
	body := calendar.Render(m.month, grid, today, opts)
	p := panel.New(m.theme.Panel)
	p.SetContent("", append(strings.Split(body, "\n"), "", calendar.Legend(opts)))
	return p.View()
}

func (m *Model) footer() string {
	ft := m.theme.Footer
	if m.mode == modeWrite {
		return ft.Input.Render(m.input.View()) + "\n" + ft.Help.Render(helpLine(m.keys.writing()))
	}
	line := ft.Help.Render(helpLine(m.keys.short()))
	if m.status != "" {
		line = ft.Status.Render(m.status) + "\n" + line
	}
	return line
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
