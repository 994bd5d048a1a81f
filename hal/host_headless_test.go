//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"testing"
)

func TestDumpFramebuffer(t *testing.T) {
	fb := NewMemFramebuffer(3, 3)
	fb.ClearRGB(255, 255, 255)
	// Dark pixel at (1,1), little-endian RGB565 black.
	off := 1*fb.StrideBytes() + 1*2
	fb.Buffer()[off] = 0
	fb.Buffer()[off+1] = 0
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	var out bytes.Buffer
	if err := DumpFramebuffer(&out, fb); err != nil {
		t.Fatalf("DumpFramebuffer: %v", err)
	}
	if got, want := out.String(), ".#.\n"; got != want {
		t.Fatalf("dump = %q, want %q", got, want)
	}
}

func TestRunHeadless_ScriptReachesKeyboard(t *testing.T) {
	cfg := HeadlessConfig{Enabled: true, Hz: 1000, Script: "R+,.,R-,B+"}

	code, err := RunHeadless(context.Background(), cfg, HostConfig{}, func(h HAL) int {
		events := h.Input().Keyboard().Events()
		var got []KeyEvent
		for ev := range events {
			got = append(got, ev)
			if ev.Code == KeyBack {
				break
			}
		}
		if len(got) != 3 {
			return 1
		}
		if got[0] != (KeyEvent{Code: KeyRight, Press: true}) || got[1] != (KeyEvent{Code: KeyRight}) {
			return 2
		}
		return 7
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if code != 7 {
		t.Fatalf("code = %d, want 7", code)
	}
}

func TestRunHeadless_CancelInjectsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := RunHeadless(ctx, HeadlessConfig{Enabled: true, Hz: 1000}, HostConfig{}, func(h HAL) int {
		for ev := range h.Input().Keyboard().Events() {
			if ev.Code == KeyBack && ev.Press {
				return 3
			}
		}
		return 0
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if code != 3 {
		t.Fatalf("code = %d, want 3", code)
	}
}

func TestRunHeadless_BadScript(t *testing.T) {
	_, err := RunHeadless(context.Background(), HeadlessConfig{Script: "Q"}, HostConfig{}, func(HAL) int { return 0 })
	if err == nil {
		t.Fatalf("RunHeadless(bad script): err = nil, want error")
	}
}
