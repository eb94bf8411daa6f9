// Package transport carries commands between the two boards as best-effort
// UDP broadcast datagrams, mirroring the ESP-NOW link of the hardware
// build: no session, no acknowledgement, no retry. A lost datagram simply
// leaves the receiver on its last LED pattern until the next command.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"syscall"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// Broadcaster sends commands to the broadcast address, fire-and-forget.
type Broadcaster struct {
	conn net.PacketConn
	dst  *net.UDPAddr
}

// NewBroadcaster opens a UDP socket with broadcast enabled, targeting addr
// (e.g. "255.255.255.255:8830").
func NewBroadcaster(addr string) (*Broadcaster, error) {
	dst, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid broadcast address %q: %v", addr, err)
	}

	lc := net.ListenConfig{Control: enableBroadcast}
	conn, err := lc.ListenPacket(context.Background(), "udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("error opening broadcast socket: %v", err)
	}

	return &Broadcaster{conn: conn, dst: dst}, nil
}

// Send transmits one command. Errors are swallowed: the link provides no
// delivery guarantee and the controller re-sends on every transition anyway.
func (b *Broadcaster) Send(cmd models.Command) {
	b.conn.WriteTo(cmd.Payload(), b.dst)
}

// Close closes the socket.
func (b *Broadcaster) Close() error {
	return b.conn.Close()
}

func enableBroadcast(network, address string, c syscall.RawConn) error {
	var opErr error
	if err := c.Control(func(fd uintptr) {
		opErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return opErr
}

// Receiver listens for command datagrams on the board side.
type Receiver struct {
	conn *net.UDPConn
}

// NewReceiver binds the listen address (e.g. ":8830").
func NewReceiver(addr string) (*Receiver, error) {
	udpAddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %v", addr, err)
	}

	conn, err := net.ListenUDP("udp4", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("error binding %q: %v", addr, err)
	}

	return &Receiver{conn: conn}, nil
}

// Addr returns the bound address, useful when listening on port 0.
func (r *Receiver) Addr() net.Addr {
	return r.conn.LocalAddr()
}

// Listen blocks reading datagrams and hands each decoded command to handle.
// Malformed payloads are logged and dropped. Listen returns nil once the
// receiver is closed.
func (r *Receiver) Listen(handle func(cmd models.Command)) error {
	buf := make([]byte, 64)
	for {
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("error reading datagram: %v", err)
		}

		cmd, ok := models.ParseCommand(buf[:n])
		if !ok {
			log.Printf("⚠️ Unknown command: %q", buf[:n])
			continue
		}

		handle(cmd)
	}
}

// Close unblocks Listen and releases the socket.
func (r *Receiver) Close() error {
	return r.conn.Close()
}
