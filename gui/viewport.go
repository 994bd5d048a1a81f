package gui

import "sync"

// DrawCallback paints a ViewPort. It runs on the GUI goroutine.
type DrawCallback func(c *Canvas)

// InputCallback receives button events. It runs on the GUI goroutine and may
// block; the GUI does not read further input until it returns.
type InputCallback func(ev InputEvent)

// ViewPort is a drawable, input-receiving surface attached to a GUI.
type ViewPort struct {
	mu      sync.Mutex
	enabled bool
	draw    DrawCallback
	input   InputCallback
	gui     *GUI
}

// NewViewPort returns an enabled ViewPort with no callbacks.
func NewViewPort() *ViewPort {
	return &ViewPort{enabled: true}
}

func (vp *ViewPort) SetDrawCallback(fn DrawCallback) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	vp.draw = fn
}

func (vp *ViewPort) SetInputCallback(fn InputCallback) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	vp.input = fn
}

// SetEnabled shows or hides the ViewPort. Hidden viewports are neither drawn
// nor given input.
func (vp *ViewPort) SetEnabled(enabled bool) {
	vp.mu.Lock()
	changed := vp.enabled != enabled
	vp.enabled = enabled
	g := vp.gui
	vp.mu.Unlock()

	if changed && g != nil {
		g.requestRedraw()
	}
}

func (vp *ViewPort) Enabled() bool {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	return vp.enabled
}

// Update asks the GUI to repaint. It never blocks; requests made before the
// next paint are merged into one.
func (vp *ViewPort) Update() {
	vp.mu.Lock()
	g := vp.gui
	vp.mu.Unlock()

	if g != nil {
		g.requestRedraw()
	}
}

func (vp *ViewPort) attach(g *GUI) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	vp.gui = g
}

func (vp *ViewPort) callbacks() (draw DrawCallback, input InputCallback) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	return vp.draw, vp.input
}
