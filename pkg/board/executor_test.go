package board

import (
	"testing"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

type fakeLEDBank struct {
	leds [models.NumPositions]bool
}

func (b *fakeLEDBank) Set(pos int, on bool) {
	if pos >= 1 && pos <= len(b.leds) {
		b.leds[pos-1] = on
	}
}

func (b *fakeLEDBank) AllOn() {
	for i := range b.leds {
		b.leds[i] = true
	}
}

func (b *fakeLEDBank) AllOff() {
	b.leds = [models.NumPositions]bool{}
}

func TestExecutorDefaultsDark(t *testing.T) {
	leds := &fakeLEDBank{leds: [models.NumPositions]bool{true, true, true, true, true}}
	NewExecutor(leds)
	if leds.leds != ([models.NumPositions]bool{}) {
		t.Fatalf("LEDs after init = %v, want all off", leds.leds)
	}
}

func TestExecutorSelect(t *testing.T) {
	leds := &fakeLEDBank{}
	executor := NewExecutor(leds)

	executor.Execute(models.SelectPosition(3))
	if leds.leds != ([models.NumPositions]bool{false, false, true, false, false}) {
		t.Fatalf("LEDs = %v, want only #3 lit", leds.leds)
	}

	// A new selection darkens the previous one.
	executor.Execute(models.SelectPosition(5))
	if leds.leds != ([models.NumPositions]bool{false, false, false, false, true}) {
		t.Fatalf("LEDs = %v, want only #5 lit", leds.leds)
	}
}

func TestExecutorAllAndOff(t *testing.T) {
	leds := &fakeLEDBank{}
	executor := NewExecutor(leds)

	executor.Execute(models.All)
	if leds.leds != ([models.NumPositions]bool{true, true, true, true, true}) {
		t.Fatalf("LEDs = %v, want all lit", leds.leds)
	}

	executor.Execute(models.Off)
	if leds.leds != ([models.NumPositions]bool{}) {
		t.Fatalf("LEDs = %v, want all off", leds.leds)
	}
}

func TestExecutorIgnoresOutOfRange(t *testing.T) {
	leds := &fakeLEDBank{}
	executor := NewExecutor(leds)

	executor.Execute(models.SelectPosition(2))
	executor.Execute(models.SelectPosition(0))
	executor.Execute(models.SelectPosition(6))

	if leds.leds != ([models.NumPositions]bool{false, true, false, false, false}) {
		t.Fatalf("LEDs = %v, out-of-range selects must be no-ops", leds.leds)
	}
}
