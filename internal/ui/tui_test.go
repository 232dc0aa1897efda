package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csvtrim/csvtrim/internal/config"
	"github.com/csvtrim/csvtrim/internal/logging"
	"github.com/csvtrim/csvtrim/internal/profile"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(csvPath, []byte("SKIP-1,x\nKEEP,y\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store, err := profile.Open(filepath.Join(dir, "trim_profiles.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Set("weekly", profile.Profile{TrimPrefixes: []string{"SKIP"}}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	log, err := logging.NewLogger(logging.LogLevelSilent, "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	cfg := config.CreateDefault()
	return &Session{Config: cfg, Store: store, Log: log, Dir: dir}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m tuiModel, s string) tuiModel {
	t.Helper()
	next, _ := m.Update(key(s))
	return next.(tuiModel)
}

func TestTUIQuitKey(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"data.csv"})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestTUICursorStaysInBounds(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"a.csv", "b.csv"})
	m = update(t, m, "up")
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first item: %d", m.cursor)
	}
	m = update(t, m, "down")
	m = update(t, m, "down")
	m = update(t, m, "down")
	if m.cursor != 1 {
		t.Fatalf("cursor moved past last item: %d", m.cursor)
	}
}

func TestTUIEnterSelectsFile(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"data.csv"})
	m = update(t, m, "enter")
	if m.mode != viewProfiles {
		t.Fatalf("expected profiles view, got %v", m.mode)
	}
	if filepath.Base(m.selectedFile) != "data.csv" {
		t.Fatalf("expected data.csv selected, got %s", m.selectedFile)
	}
	m = update(t, m, "b")
	if m.mode != viewFiles {
		t.Fatalf("expected back to files view, got %v", m.mode)
	}
}

func TestTUIApplyProfileShowsReview(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"data.csv"})
	m = update(t, m, "enter") // file
	m = update(t, m, "enter") // first profile
	if m.mode != viewReview {
		t.Fatalf("expected review view, got %v (status %q)", m.mode, m.status)
	}
	expectContainsString(t, m.reviewText, "Review & Write")
	expectContainsString(t, m.reviewText, "KEEP")
	if m.result.RowCount() != 1 {
		t.Fatalf("expected one surviving row, got %d", m.result.RowCount())
	}
}

func TestTUIWriteOutput(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"data.csv"})
	m = update(t, m, "enter")
	m = update(t, m, "enter")
	m = update(t, m, "w")

	out := filepath.Join(m.session.Dir, "trimmed_data.csv")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output written: %v (status %q)", err, m.status)
	}
	if string(data) != "KEEP,y\n" {
		t.Fatalf("unexpected output: %q", data)
	}
}

func TestTUINewProfileOpensWizard(t *testing.T) {
	m := newTUIModel(newTestSession(t), []string{"data.csv"})
	m = update(t, m, "enter")
	m = update(t, m, "n")
	if m.mode != viewWizard || m.wizardForm == nil {
		t.Fatalf("expected wizard form, got mode %v", m.mode)
	}
}
