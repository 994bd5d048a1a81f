// Package app is the AirMouse application: it mirrors two buttons onto two
// click lines and shows which ones are held.
package app

import (
	"errors"
	"sync"
	"time"

	"airmouse/gui"
	"airmouse/hal"
	"airmouse/internal/buildinfo"
	"airmouse/internal/logx"
	"airmouse/kernel"
)

const tag = "airmouse"

// Process exit codes.
const (
	ExitOK        = 0
	ExitNoMutex   = 255
	ExitNoQueue   = 254
	ExitNoDisplay = 253
)

const (
	queueCapacity = 8

	otgAttempts    = 5
	otgRetryDelay  = 10 * time.Millisecond
	otgSettleDelay = 200 * time.Millisecond
)

// Config holds internal knobs. The zero value selects the defaults.
type Config struct {
	// PollTimeout bounds each wait for an input event.
	PollTimeout time.Duration
	// Sleep is used for the power-up delays.
	Sleep func(time.Duration)
	// NewLocker creates the state lock.
	NewLocker func() (sync.Locker, error)
}

func (c Config) withDefaults() Config {
	if c.PollTimeout <= 0 {
		c.PollTimeout = 100 * time.Millisecond
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	if c.NewLocker == nil {
		c.NewLocker = func() (sync.Locker, error) { return new(sync.Mutex), nil }
	}
	return c
}

// Run runs the application until Back is pressed and returns the exit code.
func Run(h hal.HAL) int {
	return RunWithConfig(h, Config{})
}

func RunWithConfig(h hal.HAL, cfg Config) int {
	cfg = cfg.withDefaults()
	log := h.Logger()
	power := h.Power()

	logx.I(log, tag, "starting %s", buildinfo.Short())
	enableOTG(log, power, cfg.Sleep)

	queue, err := kernel.NewMessageQueue[Event](queueCapacity)
	if err != nil {
		logx.E(log, tag, "cannot create queue: %v", err)
		disableOTG(log, power)
		return ExitNoQueue
	}

	mu, err := cfg.NewLocker()
	if err == nil && mu == nil {
		err = errors.New("nil locker")
	}
	if err != nil {
		logx.E(log, tag, "cannot create mutex")
		queue.Free()
		disableOTG(log, power)
		return ExitNoMutex
	}
	st := newState(mu)

	g, err := gui.Open(h.Display(), h.Input(), log)
	if err != nil {
		logx.E(log, tag, "cannot open display: %v", err)
		queue.Free()
		disableOTG(log, power)
		return ExitNoDisplay
	}

	vp := gui.NewViewPort()
	vp.SetDrawCallback(func(c *gui.Canvas) { drawScreen(c, st) })
	vp.SetInputCallback(func(ev gui.InputEvent) {
		queue.Put(keyEvent(ev), kernel.WaitForever)
	})
	g.AddViewPort(vp, gui.LayerFullscreen)

	clicker := NewClicker(h.GPIO())
	for running := true; running; {
		ev, status := queue.Get(cfg.PollTimeout)
		if status == kernel.StatusOK {
			logx.D(log, tag, "%v %v", ev.Input.Key, ev.Input.Type)
			st.Lock()
			running = clicker.Apply(ev, st)
			st.Unlock()
		}
		vp.Update()
	}
	logx.I(log, tag, "exiting")

	disableOTG(log, power)
	vp.SetEnabled(false)
	g.RemoveViewPort(vp)
	// An input callback may still be parked in Put; freeing the queue
	// releases it so Close can join the GUI goroutine.
	queue.Free()
	g.Close()
	return ExitOK
}

// enableOTG powers the auxiliary rail, retrying a few times before giving up
// and letting the rail settle.
func enableOTG(log hal.Logger, p hal.Power, sleep func(time.Duration)) {
	if p == nil {
		return
	}
	var err error
	for i := 0; i < otgAttempts && !p.OTGEnabled(); i++ {
		err = p.EnableOTG()
		sleep(otgRetryDelay)
	}
	if !p.OTGEnabled() {
		logx.W(log, tag, "otg: not enabled: %v", err)
	}
	sleep(otgSettleDelay)
}

func disableOTG(log hal.Logger, p hal.Power) {
	if p == nil || !p.OTGEnabled() {
		return
	}
	if err := p.DisableOTG(); err != nil {
		logx.W(log, tag, "otg: %v", err)
	}
}
