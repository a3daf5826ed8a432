package domain_test

import (
	"testing"

	"gateprep/internal/modules/studytime/domain"
)

func TestTimerStateMachine(t *testing.T) {
	t.Parallel()
	var timer domain.Timer
	if timer.State() != domain.Idle {
		t.Fatalf("zero timer must be idle")
	}
	if timer.Tick() {
		t.Fatalf("tick must not fire while idle")
	}
	if _, ok := timer.Pause(); ok {
		t.Fatalf("pause must be a no-op while idle")
	}

	timer.Start()
	timer.Start()
	for i := 0; i < 3; i++ {
		timer.Tick()
	}
	if timer.Elapsed() != 3 {
		t.Fatalf("expected 3 elapsed, got %d", timer.Elapsed())
	}
	elapsed, ok := timer.Pause()
	if !ok || elapsed != 3 {
		t.Fatalf("expected pause to hand back 3, got %d %v", elapsed, ok)
	}
	if timer.State() != domain.Paused || timer.Elapsed() != 0 {
		t.Fatalf("pause must zero elapsed, got %s %d", timer.State(), timer.Elapsed())
	}
	if timer.Tick() {
		t.Fatalf("tick must not fire while paused")
	}

	timer.Start()
	timer.Tick()
	timer.Reset()
	if timer.State() != domain.Idle || timer.Elapsed() != 0 {
		t.Fatalf("reset must return to idle with nothing elapsed")
	}
}
