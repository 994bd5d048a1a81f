//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// machinePin is a GPIOPin backed by a TinyGo machine.Pin. The RP2040 has no
// slew-rate setting in machine.PinConfig, so speed is accepted and ignored.
type machinePin struct {
	pin  machine.Pin
	name string
	mode GPIOMode
	set  bool
}

func newMachinePin(name string, pin machine.Pin) *machinePin {
	return &machinePin{pin: pin, name: name}
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull, speed GPIOSpeed) error {
	_ = speed
	if err := checkConfig(p.name, p.Caps(), mode, pull); err != nil {
		return err
	}

	cfg := machine.PinConfig{Mode: machine.PinOutput}
	if mode == GPIOModeInput {
		switch pull {
		case GPIOPullUp:
			cfg.Mode = machine.PinInputPullup
		case GPIOPullDown:
			cfg.Mode = machine.PinInputPulldown
		default:
			cfg.Mode = machine.PinInput
		}
	}
	p.pin.Configure(cfg)
	p.mode = mode
	p.set = true
	return nil
}

func (p *machinePin) Read() (bool, error) {
	if !p.set {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	if !p.set || p.mode != GPIOModeOutputPushPull {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.pin.Set(level)
	return nil
}

type button struct {
	pin  machine.Pin
	code KeyCode
}

// buttonKeyboard polls active-low buttons and reports debounced edges.
type buttonKeyboard struct {
	ch chan KeyEvent
}

const (
	buttonPollInterval  = 2 * time.Millisecond
	buttonStableSamples = 5
)

func newButtonKeyboard(buttons []button) *buttonKeyboard {
	k := &buttonKeyboard{ch: make(chan KeyEvent, 16)}
	for _, b := range buttons {
		b.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	go func() {
		pressed := make([]bool, len(buttons))
		stable := make([]uint8, len(buttons))
		for {
			for i, b := range buttons {
				now := !b.pin.Get()
				if now == pressed[i] {
					stable[i] = 0
					continue
				}
				stable[i]++
				if stable[i] < buttonStableSamples {
					continue
				}
				stable[i] = 0
				pressed[i] = now
				select {
				case k.ch <- KeyEvent{Code: b.code, Press: now}:
				default:
				}
			}
			time.Sleep(buttonPollInterval)
		}
	}()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }
