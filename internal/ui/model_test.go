package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"noticeboard/internal/board"
)

func TestSurfaceRejectsUnknownRegion(t *testing.T) {
	s := NewSurface()
	if err := s.SetText("sidebar", "x"); err != board.ErrNoRegion {
		t.Fatalf("expected ErrNoRegion, got %v", err)
	}
	if err := s.Clear("sidebar"); err != board.ErrNoRegion {
		t.Fatalf("expected ErrNoRegion, got %v", err)
	}
}

func TestViewShowsBannerAndLog(t *testing.T) {
	s := NewSurface()
	if err := s.SetText(board.RegionBannerText, "Maintenance tonight"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	_ = s.SetStyle(board.RegionBanner, "warning")
	_ = s.SetVisible(board.RegionBanner, true)
	_ = s.AppendLine(board.RegionLog, "Notices")
	_ = s.AppendLine(board.RegionLog, "  10:30:00 Notice board started")

	view := NewModel(s, nil).View()
	if !strings.Contains(view, "Maintenance tonight") {
		t.Fatalf("banner text missing from view:\n%s", view)
	}
	if !strings.Contains(view, "Notice board started") {
		t.Fatalf("log line missing from view:\n%s", view)
	}
	if !strings.Contains(view, "press d to dismiss") {
		t.Fatalf("dismiss hint missing from view:\n%s", view)
	}
}

func TestViewHidesBanner(t *testing.T) {
	s := NewSurface()
	_ = s.SetText(board.RegionBannerText, "gone")
	_ = s.SetVisible(board.RegionBanner, false)

	view := NewModel(s, nil).View()
	if strings.Contains(view, "gone") {
		t.Fatalf("hidden banner rendered:\n%s", view)
	}
}

func TestDismissKeyFiresHandler(t *testing.T) {
	s := NewSurface()
	fired := 0
	if err := s.BindDismiss(func() { fired++ }); err != nil {
		t.Fatalf("BindDismiss: %v", err)
	}

	m := NewModel(s, nil)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if fired != 2 {
		t.Fatalf("dismiss fired %d times, want 2", fired)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(NewSurface(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q did not quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("expected quit message, got %#v", msg)
	}
}

func TestClearResetsLogLines(t *testing.T) {
	s := NewSurface()
	_ = s.AppendLine(board.RegionLog, "stale")
	_ = s.Clear(board.RegionLog)
	_ = s.AppendLine(board.RegionLog, "fresh")

	snap := s.snapshot()
	if len(snap.logLines) != 1 || snap.logLines[0] != "fresh" {
		t.Fatalf("unexpected log lines after clear: %v", snap.logLines)
	}
}
