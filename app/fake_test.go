package app

import (
	"errors"
	"sync"

	"airmouse/hal"
)

type nopLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *nopLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *nopLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *nopLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// fakePin records every write.
type fakePin struct {
	mu         sync.Mutex
	name       string
	configures int
	writes     []bool

	// onWrite, if set, runs before a write is recorded.
	onWrite func(level bool)
}

func (p *fakePin) Name() string       { return p.name }
func (p *fakePin) Caps() hal.GPIOCaps { return hal.GPIOCapOutput }

func (p *fakePin) Configure(mode hal.GPIOMode, pull hal.GPIOPull, speed hal.GPIOSpeed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.configures++
	return nil
}

func (p *fakePin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.writes) == 0 {
		return false, nil
	}
	return p.writes[len(p.writes)-1], nil
}

func (p *fakePin) Write(level bool) error {
	if p.onWrite != nil {
		p.onWrite(level)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes = append(p.writes, level)
	return nil
}

func (p *fakePin) Writes() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.writes...)
}

type fakeGPIO struct{ pins []hal.GPIOPin }

func (g fakeGPIO) PinCount() int { return len(g.pins) }
func (g fakeGPIO) Pin(id int) hal.GPIOPin {
	if id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

type fakePower struct {
	mu       sync.Mutex
	enabled  bool
	failures int
	enables  int
	disables int
}

func (p *fakePower) OTGEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *fakePower) EnableOTG() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enables++
	if p.failures > 0 {
		p.failures--
		return errors.New("busy")
	}
	p.enabled = true
	return nil
}

func (p *fakePower) DisableOTG() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disables++
	p.enabled = false
	return nil
}

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{ kbd hal.Keyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type fakeHAL struct {
	log   *nopLogger
	fb    *hal.MemFramebuffer
	keys  chan hal.KeyEvent
	right *fakePin
	left  *fakePin
	power *fakePower

	noDisplay bool
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &nopLogger{},
		fb:    hal.NewMemFramebuffer(hal.ScreenWidth, hal.ScreenHeight),
		keys:  make(chan hal.KeyEvent, 16),
		right: &fakePin{name: "PA7"},
		left:  &fakePin{name: "PA6"},
		power: &fakePower{},
	}
}

func (h *fakeHAL) Logger() hal.Logger { return h.log }
func (h *fakeHAL) Power() hal.Power   { return h.power }
func (h *fakeHAL) Input() hal.Input   { return fakeInput{kbd: fakeKeyboard{ch: h.keys}} }

func (h *fakeHAL) Display() hal.Display {
	if h.noDisplay {
		return fakeDisplay{}
	}
	return fakeDisplay{fb: h.fb}
}

func (h *fakeHAL) GPIO() hal.GPIO {
	return fakeGPIO{pins: []hal.GPIOPin{hal.PinRightClick: h.right, hal.PinLeftClick: h.left}}
}
