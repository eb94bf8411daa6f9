package hardware

import (
	"testing"
	"time"
)

func newTestPoller() (*Poller, *SimInput, *SimInput, []*SimInput) {
	start := NewSimInput()
	reset := NewSimInput()
	sims := make([]*SimInput, 5)
	inputs := make([]DigitalInput, 5)
	for i := range sims {
		sims[i] = NewSimInput()
		inputs[i] = sims[i]
	}
	return NewPoller(start, reset, inputs), start, reset, sims
}

func TestPollerRisingEdges(t *testing.T) {
	poller, start, _, sensors := newTestPoller()

	starts := 0
	triggered := []int{}
	poller.OnStart(func(time.Time) { starts++ })
	poller.OnSensor(func(pos int, _ time.Time) { triggered = append(triggered, pos) })

	now := time.Now()
	poller.Sample(now)
	if starts != 0 {
		t.Fatal("no edge without a level change")
	}

	// A held button fires exactly once until released.
	start.Set(true)
	poller.Sample(now)
	poller.Sample(now)
	poller.Sample(now)
	if starts != 1 {
		t.Fatalf("start edges = %d, want 1 for a held button", starts)
	}

	start.Set(false)
	poller.Sample(now)
	start.Set(true)
	poller.Sample(now)
	if starts != 2 {
		t.Fatalf("start edges = %d, want 2 after release and re-press", starts)
	}

	// Sensor index 2 reports as position 3.
	sensors[2].Set(true)
	poller.Sample(now)
	sensors[2].Set(false)
	poller.Sample(now)
	sensors[2].Set(true)
	poller.Sample(now)
	if len(triggered) != 2 || triggered[0] != 3 || triggered[1] != 3 {
		t.Fatalf("sensor events = %v, want [3 3]", triggered)
	}
}

func TestPollerResetEdge(t *testing.T) {
	poller, _, reset, _ := newTestPoller()

	resets := 0
	poller.OnReset(func(time.Time) { resets++ })

	now := time.Now()
	reset.Set(true)
	poller.Sample(now)
	poller.Sample(now)
	if resets != 1 {
		t.Fatalf("reset edges = %d, want 1", resets)
	}
}

func TestPollerWithoutHandlers(t *testing.T) {
	poller, start, reset, sensors := newTestPoller()

	// No handlers registered: sampling edges must not panic.
	start.Set(true)
	reset.Set(true)
	sensors[0].Set(true)
	poller.Sample(time.Now())
}
