package domain

type TimerState int

const (
	Idle TimerState = iota
	Running
	Paused
)

func (s TimerState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer counts logical seconds of the current session. It holds no
// scheduling of its own; the caller drives Tick.
type Timer struct {
	state   TimerState
	elapsed int64
}

func (t *Timer) State() TimerState { return t.state }

func (t *Timer) Elapsed() int64 { return t.elapsed }

func (t *Timer) Start() {
	t.state = Running
}

// Tick adds one second while running and reports whether it did.
func (t *Timer) Tick() bool {
	if t.state != Running {
		return false
	}
	t.elapsed++
	return true
}

// Pause stops a running timer and hands back the seconds to credit.
func (t *Timer) Pause() (int64, bool) {
	if t.state != Running {
		return 0, false
	}
	elapsed := t.elapsed
	t.elapsed = 0
	t.state = Paused
	return elapsed, true
}

// Reset discards the session without crediting it.
func (t *Timer) Reset() {
	t.state = Idle
	t.elapsed = 0
}
