package hardware

import (
	"log"
	"strings"
	"sync"
)

// SimInput is a settable digital input for development and tests.
type SimInput struct {
	mu    sync.Mutex
	level bool
}

// NewSimInput returns an inactive input.
func NewSimInput() *SimInput {
	return &SimInput{}
}

// Set drives the input level.
func (s *SimInput) Set(level bool) {
	s.mu.Lock()
	s.level = level
	s.mu.Unlock()
}

// Read reports the current level.
func (s *SimInput) Read() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// ConsoleDisplay logs display updates instead of driving a TM1637.
type ConsoleDisplay struct {
	Name string
}

func NewConsoleDisplay(name string) *ConsoleDisplay {
	return &ConsoleDisplay{Name: name}
}

func (d *ConsoleDisplay) ShowNumber(n int) {
	log.Printf("🖥️  [%s] %4d", d.Name, n)
}

func (d *ConsoleDisplay) ShowClock(minutes, seconds int) {
	log.Printf("🖥️  [%s] %02d:%02d", d.Name, minutes, seconds)
}

func (d *ConsoleDisplay) ShowText(text string) {
	log.Printf("🖥️  [%s] %s", d.Name, text)
}

func (d *ConsoleDisplay) Clear() {
	log.Printf("🖥️  [%s] ----", d.Name)
}

// ConsoleLEDBank renders the receiver LED row as a log line.
type ConsoleLEDBank struct {
	mu   sync.Mutex
	leds []bool
}

func NewConsoleLEDBank(size int) *ConsoleLEDBank {
	return &ConsoleLEDBank{leds: make([]bool, size)}
}

func (b *ConsoleLEDBank) Set(pos int, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos < 1 || pos > len(b.leds) {
		return
	}
	b.leds[pos-1] = on
	b.render()
}

func (b *ConsoleLEDBank) AllOn() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.leds {
		b.leds[i] = true
	}
	b.render()
}

func (b *ConsoleLEDBank) AllOff() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.leds {
		b.leds[i] = false
	}
	b.render()
}

func (b *ConsoleLEDBank) render() {
	var row strings.Builder
	for _, on := range b.leds {
		if on {
			row.WriteString("🔴")
		} else {
			row.WriteString("⚪")
		}
	}
	log.Printf("💡 %s", row.String())
}
