package models

import "testing"

func TestCommandPayload(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Off, "OFF"},
		{All, "ALL"},
		{SelectPosition(1), "1"},
		{SelectPosition(5), "5"},
	}
	for _, tt := range tests {
		if got := string(tt.cmd.Payload()); got != tt.want {
			t.Errorf("Payload(%v) = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestParseCommand(t *testing.T) {
	for _, payload := range []string{"1", "2", "3", "4", "5"} {
		cmd, ok := ParseCommand([]byte(payload))
		if !ok {
			t.Fatalf("ParseCommand(%q) not ok", payload)
		}
		if cmd.Kind != CommandSelect || cmd.Position != int(payload[0]-'0') {
			t.Errorf("ParseCommand(%q) = %+v", payload, cmd)
		}
	}

	if cmd, ok := ParseCommand([]byte("OFF")); !ok || cmd.Kind != CommandOff {
		t.Errorf("ParseCommand(OFF) = %+v, %v", cmd, ok)
	}
	if cmd, ok := ParseCommand([]byte("ALL")); !ok || cmd.Kind != CommandAll {
		t.Errorf("ParseCommand(ALL) = %+v, %v", cmd, ok)
	}

	// The receiver strips whitespace, like the MicroPython receiver did.
	if cmd, ok := ParseCommand([]byte(" 3\n")); !ok || cmd.Position != 3 {
		t.Errorf("ParseCommand(\" 3\\n\") = %+v, %v", cmd, ok)
	}
}

func TestParseCommandRejectsMalformed(t *testing.T) {
	for _, payload := range []string{"", "0", "6", "42", "off", "all", "ON", "1x", "\x00"} {
		if cmd, ok := ParseCommand([]byte(payload)); ok {
			t.Errorf("ParseCommand(%q) = %+v, want rejection", payload, cmd)
		}
	}
}
