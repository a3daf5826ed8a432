package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	studytimedto "gateprep/internal/modules/studytime/dto"
	timerview "gateprep/internal/ui/views/timer"
)

func openPalette(t *testing.T) Model {
	t.Helper()
	m := NewModel(time.Millisecond, nil, nil, nil, nil)
	m.palette.Open()
	if !m.palette.Visible() {
		t.Fatalf("expected palette to be visible")
	}
	return m
}

func TestTickChainSurvivesOpenPalette(t *testing.T) {
	t.Parallel()
	m := openPalette(t)

	next, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected the tick to be rescheduled")
	}
	if _, ok := cmd().(tickMsg); !ok {
		t.Fatalf("expected rescheduled command to yield a tick")
	}
	if !next.(Model).palette.Visible() {
		t.Fatalf("tick must not close the palette")
	}
}

func TestTimerSnapshotAppliedWhilePaletteOpen(t *testing.T) {
	t.Parallel()
	m := openPalette(t)

	next, _ := m.Update(timerview.SnapshotMsg{
		Snapshot: studytimedto.SnapshotOutput{TimerState: "running"},
		Status:   "timer started",
	})
	got := next.(Model)
	if !got.timerView.Running() {
		t.Fatalf("expected timer view to hold the running snapshot")
	}
	if got.status != "timer started" {
		t.Fatalf("expected status from snapshot, got %q", got.status)
	}
	if !got.palette.Visible() {
		t.Fatalf("snapshot must not close the palette")
	}
}

func TestKeysGoToPaletteWhileOpen(t *testing.T) {
	t.Parallel()
	m := openPalette(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	got := next.(Model)
	if got.activeTab != tabTimer {
		t.Fatalf("tab must complete in the palette, not switch tabs; active tab %d", got.activeTab)
	}
	if !got.palette.Visible() {
		t.Fatalf("expected palette to stay open")
	}
}
