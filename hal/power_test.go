package hal

import (
	"errors"
	"testing"
)

func TestPinPower_EnableDisable(t *testing.T) {
	pin := newVirtualPin("OTG", allCaps, nil)
	p := newPinPower(pin)

	if p.OTGEnabled() {
		t.Fatalf("OTGEnabled() = true before EnableOTG")
	}
	if err := p.EnableOTG(); err != nil {
		t.Fatalf("EnableOTG: %v", err)
	}
	if !p.OTGEnabled() {
		t.Fatalf("OTGEnabled() = false after EnableOTG")
	}
	if level, _ := pin.Read(); !level {
		t.Fatalf("pin level = %v, want true", level)
	}

	if err := p.DisableOTG(); err != nil {
		t.Fatalf("DisableOTG: %v", err)
	}
	if p.OTGEnabled() {
		t.Fatalf("OTGEnabled() = true after DisableOTG")
	}
	if level, _ := pin.Read(); level {
		t.Fatalf("pin level = %v, want false", level)
	}
}

func TestPinPower_ConfigureErrorKeepsState(t *testing.T) {
	p := newPinPower(newVirtualPin("OTG", GPIOCapInput, nil))
	if err := p.EnableOTG(); err == nil {
		t.Fatalf("EnableOTG on input-only pin: err = nil, want error")
	}
	if p.OTGEnabled() {
		t.Fatalf("OTGEnabled() = true after failed EnableOTG")
	}
}

func TestNullPower(t *testing.T) {
	p := newPinPower(nil)
	if err := p.EnableOTG(); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("EnableOTG() = %v, want ErrNotImplemented", err)
	}
	if p.OTGEnabled() {
		t.Fatalf("OTGEnabled() = true")
	}
	if err := p.DisableOTG(); err != nil {
		t.Fatalf("DisableOTG() = %v, want nil", err)
	}
}
