// Package hardware holds the thin interfaces between the game core and the
// physical boards. Pin wiring, display driver ICs and real LED outputs live
// behind these interfaces; the package ships simulated implementations that
// stand in for them on a development machine.
package hardware

// DigitalInput is a momentary button or hall sensor sampled once per tick.
// Read reports true while the input is active.
type DigitalInput interface {
	Read() bool
}

// Display is one of the two four-digit numeric displays (time and score).
type Display interface {
	ShowNumber(n int)
	ShowClock(minutes, seconds int)
	ShowText(text string)
	Clear()
}

// LEDBank is the receiver board's row of fish LEDs, numbered 1..size.
type LEDBank interface {
	Set(pos int, on bool)
	AllOn()
	AllOff()
}
