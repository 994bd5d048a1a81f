package hal

import (
	"strings"
	"sync"
	"testing"
)

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *recordLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *recordLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

const allCaps = GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown

func TestVirtualPin_RequiresConfigure(t *testing.T) {
	p := newVirtualPin("PA7", allCaps, nil)

	if _, err := p.Read(); err == nil {
		t.Fatalf("Read() before Configure: err = nil, want error")
	}
	if err := p.Write(true); err == nil {
		t.Fatalf("Write() before Configure: err = nil, want error")
	}
}

func TestVirtualPin_WriteNeedsOutputMode(t *testing.T) {
	p := newVirtualPin("PA7", allCaps, nil)
	if err := p.Configure(GPIOModeInput, GPIOPullUp, GPIOSpeedLow); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := p.Write(true); err == nil {
		t.Fatalf("Write() in input mode: err = nil, want error")
	}
}

func TestVirtualPin_WriteLogsChanges(t *testing.T) {
	log := &recordLogger{}
	p := newVirtualPin("PA7", allCaps, log)
	if err := p.Configure(GPIOModeOutputPushPull, GPIOPullNone, GPIOSpeedVeryHigh); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	for _, level := range []bool{true, true, false} {
		if err := p.Write(level); err != nil {
			t.Fatalf("Write(%v): %v", level, err)
		}
	}
	got, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got {
		t.Fatalf("Read() = %v, want false", got)
	}

	want := []string{"gpio: PA7 HIGH", "gpio: PA7 LOW"}
	lines := log.Lines()
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("log = %q, want %q", lines, want)
	}
}

func TestVirtualPin_CapsChecked(t *testing.T) {
	p := newVirtualPin("IN", GPIOCapInput, nil)

	if err := p.Configure(GPIOModeOutputPushPull, GPIOPullNone, GPIOSpeedLow); err == nil {
		t.Fatalf("Configure(output) on input-only pin: err = nil, want error")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullUp, GPIOSpeedLow); err == nil {
		t.Fatalf("Configure(pull-up) without cap: err = nil, want error")
	}
	if err := p.Configure(GPIOModeInput, GPIOPullNone, GPIOSpeedLow); err != nil {
		t.Fatalf("Configure(input): %v", err)
	}
}

func TestPinTable_OutOfRange(t *testing.T) {
	g := newPinTable([]GPIOPin{newVirtualPin("A", allCaps, nil)})
	if g.PinCount() != 1 {
		t.Fatalf("PinCount() = %d, want 1", g.PinCount())
	}
	if g.Pin(-1) != nil || g.Pin(1) != nil {
		t.Fatalf("Pin(out of range) != nil")
	}
	if g.Pin(0) == nil {
		t.Fatalf("Pin(0) = nil")
	}

	if n := newPinTable(nil).PinCount(); n != 0 {
		t.Fatalf("empty table PinCount() = %d, want 0", n)
	}
}
