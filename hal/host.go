//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig selects the GPIO backend on the host.
//
// Empty pin names use in-memory pins that log level changes. Non-empty names
// are resolved through periph.io (for example "GPIO17" on a Raspberry Pi).
type HostConfig struct {
	RightPin string
	LeftPin  string
	OTGPin   string
}

type hostHAL struct {
	logger *hostLogger
	gpio   GPIO
	power  Power
	fb     *MemFramebuffer
	kbd    *hostKeyboard
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	return newHost(cfg)
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	logger := &hostLogger{w: os.Stdout}

	right, err := hostPin(cfg.RightPin, "PA7", logger)
	if err != nil {
		return nil, err
	}
	left, err := hostPin(cfg.LeftPin, "PA6", logger)
	if err != nil {
		return nil, err
	}
	otg, err := hostPin(cfg.OTGPin, "OTG", logger)
	if err != nil {
		return nil, err
	}

	pins := make([]GPIOPin, pinCount)
	pins[PinRightClick] = right
	pins[PinLeftClick] = left
	pins[PinOTG] = otg

	return &hostHAL{
		logger: logger,
		gpio:   newPinTable(pins),
		power:  newPinPower(otg),
		fb:     NewMemFramebuffer(ScreenWidth, ScreenHeight),
		kbd:    newHostKeyboard(),
	}, nil
}

func hostPin(name, virtualName string, log Logger) (GPIOPin, error) {
	if name == "" {
		return newVirtualPin(virtualName, GPIOCapInput|GPIOCapOutput|GPIOCapPullUp|GPIOCapPullDown, log), nil
	}
	p, err := openPeriphPin(name)
	if err != nil {
		return nil, fmt.Errorf("host: pin %q: %w", name, err)
	}
	return p, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Power() Power     { return h.power }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }

type hostDisplay struct {
	fb *MemFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
