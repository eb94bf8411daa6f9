// Package board implements the receiver side: a stateless executor that
// maps each incoming command to an LED pattern. Nothing is retained between
// commands; before the first message all LEDs are dark.
package board

import (
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/hardware"
	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// Executor applies commands to the LED bank.
type Executor struct {
	leds hardware.LEDBank
}

// NewExecutor starts with every LED off.
func NewExecutor(leds hardware.LEDBank) *Executor {
	leds.AllOff()
	return &Executor{leds: leds}
}

// Execute applies one command. Out-of-range positions are a no-op.
func (e *Executor) Execute(cmd models.Command) {
	switch cmd.Kind {
	case models.CommandOff:
		e.leds.AllOff()
	case models.CommandAll:
		e.leds.AllOn()
	case models.CommandSelect:
		if cmd.Position < 1 || cmd.Position > models.NumPositions {
			return
		}
		e.leds.AllOff()
		e.leds.Set(cmd.Position, true)
	}
}
