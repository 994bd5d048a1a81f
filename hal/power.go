package hal

import (
	"fmt"
	"sync"
)

// pinPower switches the OTG rail through a load-switch enable pin.
type pinPower struct {
	mu      sync.Mutex
	pin     GPIOPin
	enabled bool
}

func newPinPower(pin GPIOPin) Power {
	if pin == nil {
		return nullPower{}
	}
	return &pinPower{pin: pin}
}

func (p *pinPower) OTGEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *pinPower) EnableOTG() error {
	return p.set(true)
}

func (p *pinPower) DisableOTG() error {
	return p.set(false)
}

func (p *pinPower) set(on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.pin.Configure(GPIOModeOutputPushPull, GPIOPullNone, GPIOSpeedLow); err != nil {
		return fmt.Errorf("power: otg: %w", err)
	}
	if err := p.pin.Write(on); err != nil {
		return fmt.Errorf("power: otg: %w", err)
	}
	p.enabled = on
	return nil
}

// nullPower is used when the board has no switchable rail.
type nullPower struct{}

func (nullPower) OTGEnabled() bool  { return false }
func (nullPower) EnableOTG() error  { return ErrNotImplemented }
func (nullPower) DisableOTG() error { return nil }
