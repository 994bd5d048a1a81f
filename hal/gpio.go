package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutputPushPull
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOSpeed selects the output slew rate. Backends without slew control ignore it.
type GPIOSpeed uint8

const (
	GPIOSpeedLow GPIOSpeed = iota
	GPIOSpeedMedium
	GPIOSpeedHigh
	GPIOSpeedVeryHigh
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// Logical pin ids shared by every backend.
const (
	PinRightClick = iota
	PinLeftClick
	PinOTG

	pinCount
)

// GPIO provides access to general-purpose IO pins.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull, speed GPIOSpeed) error
	Read() (level bool, err error)
	Write(level bool) error
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type pinTable struct {
	pins []GPIOPin
}

func newPinTable(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return &pinTable{pins: pins}
}

func (g *pinTable) PinCount() int {
	if g == nil {
		return 0
	}
	return len(g.pins)
}

func (g *pinTable) Pin(id int) GPIOPin {
	if g == nil || id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

// checkConfig validates a configuration request against the pin capabilities.
func checkConfig(name string, caps GPIOCaps, mode GPIOMode, pull GPIOPull) error {
	switch mode {
	case GPIOModeInput:
		if caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", name)
		}
	case GPIOModeOutputPushPull:
		if caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", name)
		}
	case GPIOPullDown:
		if caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", name)
	}
	return nil
}

// virtualPin is an in-memory pin. Output level changes are reported to an
// optional logger so a host run shows what the hardware would see.
type virtualPin struct {
	mu         sync.Mutex
	name       string
	caps       GPIOCaps
	configured bool
	mode       GPIOMode
	pull       GPIOPull
	speed      GPIOSpeed
	level      bool
	log        Logger
}

func newVirtualPin(name string, caps GPIOCaps, log Logger) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
		log:  log,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull, speed GPIOSpeed) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkConfig(p.name, p.caps, mode, pull); err != nil {
		return err
	}
	p.configured = true
	p.mode = mode
	p.pull = pull
	p.speed = speed
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.configured {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.configured || p.mode != GPIOModeOutputPushPull {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	changed := p.level != level
	p.level = level
	if changed && p.log != nil {
		p.log.WriteLineString("gpio: " + p.name + " " + levelString(level))
	}
	return nil
}

func levelString(level bool) string {
	if level {
		return "HIGH"
	}
	return "LOW"
}
