//go:build !tinygo

package hal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Script  string
	Dump    bool
}

// RunHeadless runs the application without opening a window.
//
// Key script steps are delivered one per tick. When ctx is cancelled or the
// tick limit is reached a Back press is injected, so the application leaves
// through its normal exit path.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, hostCfg HostConfig, run func(HAL) int) (int, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 10
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return 0, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	script, err := ParseKeyScript(cfg.Script)
	if err != nil {
		return 0, err
	}

	h, err := newHost(hostCfg)
	if err != nil {
		return 0, err
	}

	done := make(chan int, 1)
	go func() { done <- run(h) }()

	t := time.NewTicker(d)
	defer t.Stop()

	stop := ctx.Done()
	var tick uint64
	for {
		select {
		case code := <-done:
			if cfg.Dump {
				if err := DumpFramebuffer(os.Stdout, h.fb); err != nil {
					return code, err
				}
			}
			return code, nil
		case <-stop:
			stop = nil
			script = append([]KeyEvent{{Code: KeyBack, Press: true}}, script...)
		case <-t.C:
			tick++
			if cfg.Ticks > 0 && tick == cfg.Ticks {
				script = append([]KeyEvent{{Code: KeyBack, Press: true}}, script...)
			}
			if len(script) == 0 {
				continue
			}
			ev := script[0]
			if ev.Code != KeyUnknown && !h.kbd.inject(ev) {
				continue
			}
			script = script[1:]
		}
	}
}

// DumpFramebuffer writes the last presented frame as ASCII art: '#' for dark
// pixels, '.' for light ones. Rows that are entirely light are skipped.
func DumpFramebuffer(w io.Writer, fb *MemFramebuffer) error {
	frame := make([]byte, fb.StrideBytes()*fb.Height())
	fb.Snapshot(frame)

	bw := bufio.NewWriter(w)
	line := make([]byte, fb.Width()+1)
	line[fb.Width()] = '\n'
	for y := 0; y < fb.Height(); y++ {
		dark := false
		for x := 0; x < fb.Width(); x++ {
			off := y*fb.StrideBytes() + x*2
			r, g, b := rgb888From565(uint16(frame[off]) | uint16(frame[off+1])<<8)
			if int(r)+int(g)+int(b) < 3*128 {
				line[x] = '#'
				dark = true
			} else {
				line[x] = '.'
			}
		}
		if !dark {
			continue
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
