//go:build linux && !tinygo

package hal

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	periphOnce sync.Once
	periphErr  error
)

func periphInit() error {
	periphOnce.Do(func() {
		_, periphErr = host.Init()
	})
	return periphErr
}

// periphPin drives a Linux GPIO line through periph.io.
type periphPin struct {
	mu   sync.Mutex
	pin  gpio.PinIO
	mode GPIOMode
	out  bool
}

func openPeriphPin(name string) (GPIOPin, error) {
	if err := periphInit(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.New("no such gpio")
	}
	return &periphPin{pin: p}, nil
}

func (p *periphPin) Name() string { return p.pin.Name() }

func (p *periphPin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull, speed GPIOSpeed) error {
	_ = speed

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkConfig(p.Name(), p.Caps(), mode, pull); err != nil {
		return err
	}
	switch mode {
	case GPIOModeOutputPushPull:
		// Out() both switches direction and sets the level; keep the current one.
		if err := p.pin.Out(gpio.Level(p.out)); err != nil {
			return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
		}
	default:
		if err := p.pin.In(periphPull(pull), gpio.NoEdge); err != nil {
			return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
		}
	}
	p.mode = mode
	return nil
}

func (p *periphPin) Read() (bool, error) {
	return p.pin.Read() == gpio.High, nil
}

func (p *periphPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutputPushPull {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.Name())
	}
	if err := p.pin.Out(gpio.Level(level)); err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
	}
	p.out = level
	return nil
}

func periphPull(pull GPIOPull) gpio.Pull {
	switch pull {
	case GPIOPullUp:
		return gpio.PullUp
	case GPIOPullDown:
		return gpio.PullDown
	default:
		return gpio.Float
	}
}
