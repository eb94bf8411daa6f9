package transport

import (
	"testing"
	"time"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

func TestLoopback(t *testing.T) {
	receiver, err := NewReceiver("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Close()

	received := make(chan models.Command, 8)
	done := make(chan error, 1)
	go func() {
		done <- receiver.Listen(func(cmd models.Command) {
			received <- cmd
		})
	}()

	tx, err := NewBroadcaster(receiver.Addr().String())
	if err != nil {
		t.Fatalf("NewBroadcaster: %v", err)
	}
	defer tx.Close()

	sent := []models.Command{
		models.All,
		models.SelectPosition(4),
		models.Off,
	}
	for _, cmd := range sent {
		tx.Send(cmd)
	}

	for _, want := range sent {
		select {
		case got := <-received:
			if got != want {
				t.Fatalf("received %v, want %v", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}

	receiver.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Listen returned %v after close, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after close")
	}
}

func TestReceiverDropsMalformed(t *testing.T) {
	receiver, err := NewReceiver("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Close()

	received := make(chan models.Command, 8)
	go receiver.Listen(func(cmd models.Command) {
		received <- cmd
	})

	tx, err := NewBroadcaster(receiver.Addr().String())
	if err != nil {
		t.Fatalf("NewBroadcaster: %v", err)
	}
	defer tx.Close()

	// Garbage first, then a valid command: only the command arrives.
	tx.conn.WriteTo([]byte("BOGUS"), tx.dst)
	tx.conn.WriteTo([]byte("9"), tx.dst)
	tx.Send(models.SelectPosition(2))

	select {
	case got := <-received:
		if got != models.SelectPosition(2) {
			t.Fatalf("received %v, want the select command", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the valid command")
	}

	select {
	case got := <-received:
		t.Fatalf("unexpected extra command %v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestBroadcasterRejectsBadAddress(t *testing.T) {
	if _, err := NewBroadcaster("not-an-address"); err == nil {
		t.Fatal("expected an error for a malformed address")
	}
	if _, err := NewReceiver("not-an-address"); err == nil {
		t.Fatal("expected an error for a malformed address")
	}
}
