package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tailpad/editor"
	"github.com/iw2rmb/tailpad/internal/logging"
	"github.com/iw2rmb/tailpad/settings"
	"github.com/iw2rmb/tailpad/tailkeep"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type tab struct {
	doc    tailkeep.Document
	editor editor.Model
}

type appModel struct {
	tabs   []tab
	active int

	tracker *tailkeep.Tracker
	storage tailkeep.Storage
	cfg     settings.Settings
	store   *settings.Store
	log     *logging.Logger
	keys    keyMap

	width  int
	height int
	status string
}

func newApp(paths []string, cfg settings.Settings, store *settings.Store, log *logging.Logger, exts []string) (appModel, error) {
	storage := diskStorage{}
	filter := tailkeep.NewFilter(exts, cfg.ExcludeRegex, log.Warn)

	m := appModel{
		tracker: tailkeep.NewTracker(storage, filter, cfg.EmptyLines),
		storage: storage,
		cfg:     cfg,
		store:   store,
		log:     log,
		keys:    defaultKeyMap(),
	}

	for _, p := range paths {
		text, err := os.ReadFile(p)
		if err != nil && !os.IsNotExist(err) {
			return appModel{}, fmt.Errorf("open %s: %w", p, err)
		}
		ed := editor.New(editor.Config{
			Text:         string(text),
			ShowLineNums: true,
			Style:        editor.DefaultStyle(),
		})
		m.tabs = append(m.tabs, tab{doc: tailkeep.Document{Path: p}, editor: ed})
	}

	m.activate(0)
	return m, nil
}

// activate moves focus to tab i and feeds the switch into the tracker. The
// tracker strips the document that lost focus and pads the new one.
func (m *appModel) activate(i int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = i
	t := m.tabs[i]
	if err := m.tracker.Activate(context.Background(), t.doc, t.editor.Buffer()); err != nil {
		m.log.Error("activate %s: %v", t.doc.Path, err)
		m.status = err.Error()
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		for i := range m.tabs {
			m.tabs[i].editor = m.tabs[i].editor.SetSize(msg.Width, m.editorHeight())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if err := m.tracker.Shutdown(context.Background()); err != nil {
				m.log.Error("shutdown: %v", err)
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.status = ""
			m.activate((m.active + 1) % len(m.tabs))
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.status = ""
			m.activate((m.active - 1 + len(m.tabs)) % len(m.tabs))
			return m, nil

		case key.Matches(msg, m.keys.Save):
			m.saveActive()
			return m, nil

		case key.Matches(msg, m.keys.MoreBlank):
			m.setEmptyLines(m.cfg.EmptyLines + 1)
			return m, nil

		case key.Matches(msg, m.keys.LessBlank):
			m.setEmptyLines(m.cfg.EmptyLines - 1)
			return m, nil
		}
	}

	if len(m.tabs) == 0 {
		return m, nil
	}

	t := &m.tabs[m.active]
	before := t.editor.Buffer().TextVersion()
	var cmd tea.Cmd
	t.editor, cmd = t.editor.Update(msg)
	if t.editor.Buffer().TextVersion() != before {
		// Content edits reach the tracker as same-document activations,
		// which it dedupes by path; nothing is stripped or re-padded.
		if err := m.tracker.Activate(context.Background(), t.doc, t.editor.Buffer()); err != nil {
			m.log.Error("notify %s: %v", t.doc.Path, err)
		}
	}
	return m, cmd
}

func (m *appModel) saveActive() {
	if len(m.tabs) == 0 {
		return
	}
	t := m.tabs[m.active]
	if err := m.storage.Write(context.Background(), t.doc, t.editor.Buffer().Text()); err != nil {
		m.log.Error("save %s: %v", t.doc.Path, err)
		m.status = err.Error()
		return
	}
	m.status = "saved " + filepath.Base(t.doc.Path)
}

// setEmptyLines mutates the target blank line count, persists it, and
// re-pads the active document right away.
func (m *appModel) setEmptyLines(n int) {
	next := settings.Settings{EmptyLines: n, ExcludeRegex: m.cfg.ExcludeRegex}.Clamped()
	if next.EmptyLines == m.cfg.EmptyLines {
		return
	}
	m.cfg = next
	if err := m.store.Save(m.cfg); err != nil {
		m.log.Warn("save settings: %v", err)
	}
	m.tracker.SetTarget(m.cfg.EmptyLines)
	m.status = fmt.Sprintf("empty lines: %d", m.cfg.EmptyLines)
}

func (m appModel) editorHeight() int {
	h := m.height - 2 // tab bar + status line
	if h < 0 {
		h = 0
	}
	return h
}

func (m appModel) View() string {
	if len(m.tabs) == 0 {
		return ""
	}

	titles := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		st := tabStyle
		if i == m.active {
			st = tabActiveStyle
		}
		titles = append(titles, st.Render(filepath.Base(t.doc.Path)))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, titles...)

	return bar + "\n" + m.tabs[m.active].editor.View() + "\n" + m.statusLine()
}

func (m appModel) statusLine() string {
	t := m.tabs[m.active]
	cur := t.editor.Buffer().Cursor()

	line := fmt.Sprintf(" %s  %d:%d  blanks:%d", t.doc.Path, cur.Row+1, cur.Col+1, m.cfg.EmptyLines)
	if m.status != "" {
		line += "  " + m.status
	} else {
		line += "  " + m.keys.helpLine()
	}
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}
	return statusStyle.Render(line)
}
