package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tailpad/buffer"
	"github.com/iw2rmb/tailpad/settings"
	"github.com/iw2rmb/tailpad/tailkeep"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func newTestApp(t *testing.T, files map[string]string, cfg settings.Settings) (appModel, string) {
	t.Helper()
	dir := t.TempDir()

	paths := make([]string, 0, len(files))
	for _, name := range []string{"a.txt", "b.txt"} {
		content, ok := files[name]
		if !ok {
			continue
		}
		p := filepath.Join(dir, name)
		writeFile(t, p, content)
		paths = append(paths, p)
	}

	store := settings.NewStore(filepath.Join(dir, "config.yaml"))
	app, err := newApp(paths, cfg, store, nil, []string{".txt"})
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	return app, dir
}

func press(m appModel, msg tea.Msg) appModel {
	next, _ := m.Update(msg)
	return next.(appModel)
}

func TestApp_OpenPadsBufferNotDisk(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 5}
	app, dir := newTestApp(t, map[string]string{"a.txt": "hello"}, cfg)

	if got, want := app.tabs[0].editor.Buffer().Text(), "hello\n\n\n\n\n"; got != want {
		t.Fatalf("buffer=%q, want %q", got, want)
	}
	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello" {
		t.Fatalf("disk changed on open: %q", got)
	}
}

func TestApp_TabSwitchStripsPreviousOnDisk(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 5}
	app, dir := newTestApp(t, map[string]string{
		"a.txt": "hello\n\n\n",
		"b.txt": "world\n\n",
	}, cfg)

	app = press(app, tea.KeyMsg{Type: tea.KeyTab})

	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello" {
		t.Fatalf("a.txt on disk=%q, want %q", got, "hello")
	}
	if got := tailkeep.CountTrailingBlank(app.tabs[1].editor.Buffer().Text()); got != 5 {
		t.Fatalf("b buffer trailing blanks=%d, want 5", got)
	}
	// b keeps its padding on disk until focus moves away from it.
	if got := readFile(t, filepath.Join(dir, "b.txt")); got != "world\n\n" {
		t.Fatalf("b.txt on disk=%q, want untouched", got)
	}
}

func TestApp_TypingDoesNotStrip(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 2}
	app, dir := newTestApp(t, map[string]string{"a.txt": "hello\n\n\n"}, cfg)

	app = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	app = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello\n\n\n" {
		t.Fatalf("content edits touched disk: %q", got)
	}
}

func TestApp_QuitStripsActiveDocument(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 5}
	app, dir := newTestApp(t, map[string]string{"a.txt": "hello"}, cfg)

	next, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	_ = next

	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello" {
		t.Fatalf("a.txt on disk=%q, want stripped %q", got, "hello")
	}
}

func TestApp_ManualBlankDeletionStillFullyStripped(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 5}
	app, dir := newTestApp(t, map[string]string{
		"a.txt": "hello",
		"b.txt": "",
	}, cfg)

	// Delete two of the five padded blanks by hand, then save.
	buf := app.tabs[0].editor.Buffer()
	buf.SetCursor(buffer.Pos{Row: buf.LineCount() - 1, Col: 0})
	app = press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	app = press(app, tea.KeyMsg{Type: tea.KeyBackspace})
	app = press(app, tea.KeyMsg{Type: tea.KeyCtrlS})

	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello\n\n\n" {
		t.Fatalf("saved a.txt=%q, want %q", got, "hello\n\n\n")
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyTab})
	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "hello" {
		t.Fatalf("a.txt on disk=%q, want fully stripped %q", got, "hello")
	}
}

func TestApp_CtrlUpRaisesTargetAndRepads(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 2}
	app, _ := newTestApp(t, map[string]string{"a.txt": "hello"}, cfg)

	if got := tailkeep.CountTrailingBlank(app.tabs[0].editor.Buffer().Text()); got != 2 {
		t.Fatalf("trailing blanks=%d, want 2", got)
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyCtrlUp})

	if app.cfg.EmptyLines != 3 {
		t.Fatalf("empty lines=%d, want 3", app.cfg.EmptyLines)
	}
	if got := tailkeep.CountTrailingBlank(app.tabs[0].editor.Buffer().Text()); got != 3 {
		t.Fatalf("trailing blanks after raise=%d, want 3", got)
	}

	// The mutation is persisted immediately.
	loaded, err := app.store.Load()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if loaded.EmptyLines != 3 {
		t.Fatalf("persisted empty lines=%d, want 3", loaded.EmptyLines)
	}
}

func TestApp_ExcludedFileNeverTouched(t *testing.T) {
	cfg := settings.Settings{EmptyLines: 5, ExcludeRegex: "SECRET"}
	app, dir := newTestApp(t, map[string]string{
		"a.txt": "has SECRET inside\n\n",
		"b.txt": "plain",
	}, cfg)

	if got := tailkeep.CountTrailingBlank(app.tabs[0].editor.Buffer().Text()); got != 2 {
		t.Fatalf("excluded buffer was padded: %d trailing blanks", got)
	}

	app = press(app, tea.KeyMsg{Type: tea.KeyTab})
	if got := readFile(t, filepath.Join(dir, "a.txt")); got != "has SECRET inside\n\n" {
		t.Fatalf("excluded file was stripped: %q", got)
	}
}
