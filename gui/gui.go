// Package gui owns the screen and the buttons: it routes input to the top
// ViewPort and repaints on request from a single goroutine.
package gui

import (
	"errors"
	"sync"

	"airmouse/hal"
	"airmouse/internal/logx"
)

const tag = "gui"

// Layer orders viewports; input and drawing go to the topmost enabled one.
type Layer uint8

const (
	LayerWindow Layer = iota
	LayerFullscreen

	layerCount
)

var ErrNoFramebuffer = errors.New("gui: no framebuffer")

// GUI is the display surface shared by all viewports.
type GUI struct {
	fb     hal.Framebuffer
	events <-chan hal.KeyEvent
	log    hal.Logger
	canvas *Canvas

	mu     sync.Mutex
	layers [layerCount][]*ViewPort

	redraw    chan struct{}
	ready     chan struct{}
	readyOnce sync.Once
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	presentFailed bool
}

// Open starts the GUI on the given display and input. A missing keyboard is
// allowed; a missing framebuffer is not.
func Open(d hal.Display, in hal.Input, log hal.Logger) (*GUI, error) {
	var fb hal.Framebuffer
	if d != nil {
		fb = d.Framebuffer()
	}
	if fb == nil {
		return nil, ErrNoFramebuffer
	}

	var events <-chan hal.KeyEvent
	if in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			events = kbd.Events()
		}
	}

	g := &GUI{
		fb:     fb,
		events: events,
		log:    log,
		canvas: NewCanvas(fb),
		redraw: make(chan struct{}, 1),
		ready:  make(chan struct{}),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go g.run()
	return g, nil
}

// Close stops the GUI goroutine and waits for it to exit.
func (g *GUI) Close() {
	g.closeOnce.Do(func() { close(g.stop) })
	<-g.done
}

// AddViewPort attaches vp on top of the given layer. Key events are left in
// the keyboard channel until the first viewport is attached.
func (g *GUI) AddViewPort(vp *ViewPort, layer Layer) {
	if layer >= layerCount {
		layer = LayerWindow
	}
	g.mu.Lock()
	g.layers[layer] = append(g.layers[layer], vp)
	g.mu.Unlock()

	vp.attach(g)
	g.readyOnce.Do(func() { close(g.ready) })
	g.requestRedraw()
}

// RemoveViewPort detaches vp. No callback starts after it returns; one that is
// already running may still complete.
func (g *GUI) RemoveViewPort(vp *ViewPort) {
	g.mu.Lock()
	for l := range g.layers {
		vps := g.layers[l]
		for i, v := range vps {
			if v == vp {
				g.layers[l] = append(vps[:i:i], vps[i+1:]...)
				break
			}
		}
	}
	g.mu.Unlock()

	vp.attach(nil)
	g.requestRedraw()
}

func (g *GUI) requestRedraw() {
	select {
	case g.redraw <- struct{}{}:
	default:
	}
}

func (g *GUI) run() {
	defer close(g.done)

	var events <-chan hal.KeyEvent
	ready := g.ready
	for {
		select {
		case <-g.stop:
			return
		case <-ready:
			ready = nil
			events = g.events
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			g.dispatch(inputFromKey(ev))
		case <-g.redraw:
			g.paint()
		}
	}
}

// top returns the topmost enabled viewport.
func (g *GUI) top() *ViewPort {
	g.mu.Lock()
	defer g.mu.Unlock()
	for l := int(layerCount) - 1; l >= 0; l-- {
		vps := g.layers[l]
		for i := len(vps) - 1; i >= 0; i-- {
			if vps[i].Enabled() {
				return vps[i]
			}
		}
	}
	return nil
}

func (g *GUI) dispatch(ev InputEvent) {
	vp := g.top()
	if vp == nil {
		return
	}
	if _, input := vp.callbacks(); input != nil {
		input(ev)
	}
}

func (g *GUI) paint() {
	g.canvas.Clear()
	if vp := g.top(); vp != nil {
		if draw, _ := vp.callbacks(); draw != nil {
			draw(g.canvas)
		}
	}

	if err := g.fb.Present(); err != nil {
		if !g.presentFailed {
			logx.W(g.log, tag, "present: %v", err)
		}
		g.presentFailed = true
		return
	}
	g.presentFailed = false
}
