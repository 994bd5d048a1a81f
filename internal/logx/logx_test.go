package logx

import "testing"

type lines []string

func (l *lines) WriteLineString(s string) { *l = append(*l, s) }
func (l *lines) WriteLineBytes(b []byte)  { *l = append(*l, string(b)) }

func TestLine(t *testing.T) {
	got := Line(LevelError, "gpio_controller", "cannot create mutex: %v", "busy")
	want := "E [gpio_controller] cannot create mutex: busy"
	if got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

func TestLevels(t *testing.T) {
	var out lines
	E(&out, "t", "e")
	W(&out, "t", "w")
	I(&out, "t", "i")
	D(&out, "t", "d")

	want := []string{"E [t] e", "W [t] w", "I [t] i", "D [t] d"}
	if len(out) != len(want) {
		t.Fatalf("got %d lines, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestLogNilLogger(t *testing.T) {
	Log(nil, LevelInfo, "t", "dropped")
}
