package models

import (
	"fmt"
	"strings"
)

// NumPositions is the number of fish slots (and receiver LEDs).
const NumPositions = 5

// CommandKind distinguishes the three wire message variants.
type CommandKind int

const (
	CommandSelect CommandKind = iota // light one LED, all others off
	CommandOff                       // all LEDs off
	CommandAll                       // all LEDs on (countdown blink)
)

// Command is a single one-way message from the controller to the board.
// There is no acknowledgement, sequence number or retry; the controller
// simply re-sends on each relevant transition.
type Command struct {
	Kind     CommandKind `json:"kind"`
	Position int         `json:"position,omitempty"` // 1..NumPositions, only for CommandSelect
}

// Off and All are the two fixed commands.
var (
	Off = Command{Kind: CommandOff}
	All = Command{Kind: CommandAll}
)

// SelectPosition builds the command that lights LED n and darkens the rest.
func SelectPosition(n int) Command {
	return Command{Kind: CommandSelect, Position: n}
}

// Payload encodes the command into its wire form: "1".."5", "OFF" or "ALL".
func (c Command) Payload() []byte {
	switch c.Kind {
	case CommandOff:
		return []byte("OFF")
	case CommandAll:
		return []byte("ALL")
	default:
		return []byte(fmt.Sprintf("%d", c.Position))
	}
}

// String returns the wire form, handy in logs.
func (c Command) String() string {
	return string(c.Payload())
}

// ParseCommand decodes a received datagram. Malformed or out-of-range
// payloads return ok=false and must be ignored by the receiver.
func ParseCommand(payload []byte) (Command, bool) {
	switch text := strings.TrimSpace(string(payload)); text {
	case "OFF":
		return Off, true
	case "ALL":
		return All, true
	case "1", "2", "3", "4", "5":
		return SelectPosition(int(text[0] - '0')), true
	default:
		return Command{}, false
	}
}
