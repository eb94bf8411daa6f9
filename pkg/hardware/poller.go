package hardware

import "time"

// Poller samples the two buttons and the five sensors once per tick and
// turns level reads into edge events. Debouncing is edge detection against
// the previous sampled value; the game service only ever sees clean edges.
type Poller struct {
	start   DigitalInput
	reset   DigitalInput
	sensors []DigitalInput

	prevStart   bool
	prevReset   bool
	prevSensors []bool

	onStart  func(now time.Time)
	onReset  func(now time.Time)
	onSensor func(pos int, now time.Time)
}

// NewPoller wires the physical inputs. Sensor index i reports as position i+1.
func NewPoller(start, reset DigitalInput, sensors []DigitalInput) *Poller {
	return &Poller{
		start:       start,
		reset:       reset,
		sensors:     sensors,
		prevSensors: make([]bool, len(sensors)),
	}
}

// OnStart registers the Start button edge handler.
func (p *Poller) OnStart(fn func(now time.Time)) { p.onStart = fn }

// OnReset registers the Reset button edge handler.
func (p *Poller) OnReset(fn func(now time.Time)) { p.onReset = fn }

// OnSensor registers the sensor rising-edge handler.
func (p *Poller) OnSensor(fn func(pos int, now time.Time)) { p.onSensor = fn }

// Sample reads every input once and fires handlers for rising edges.
func (p *Poller) Sample(now time.Time) {
	if cur := p.start.Read(); cur != p.prevStart {
		p.prevStart = cur
		if cur && p.onStart != nil {
			p.onStart(now)
		}
	}

	if cur := p.reset.Read(); cur != p.prevReset {
		p.prevReset = cur
		if cur && p.onReset != nil {
			p.onReset(now)
		}
	}

	for i, sensor := range p.sensors {
		cur := sensor.Read()
		if cur != p.prevSensors[i] {
			p.prevSensors[i] = cur
			if cur && p.onSensor != nil {
				p.onSensor(i+1, now)
			}
		}
	}
}
