//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"airmouse/app"
	"airmouse/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var hostCfg hal.HostConfig
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 10, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Press Back after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&cfg.Script, "script", "", `Key script for headless mode, e.g. "R+,R-,L,B".`)
	flag.BoolVar(&cfg.Dump, "dump", false, "Print the last frame as ASCII art on exit (headless mode).")
	flag.StringVar(&hostCfg.RightPin, "right-pin", "", "Linux GPIO name for the right click line (empty = virtual).")
	flag.StringVar(&hostCfg.LeftPin, "left-pin", "", "Linux GPIO name for the left click line (empty = virtual).")
	flag.StringVar(&hostCfg.OTGPin, "otg-pin", "", "Linux GPIO name for the OTG power enable (empty = virtual).")
	flag.Parse()

	var (
		code int
		err  error
	)
	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		code, err = hal.RunHeadless(ctx, cfg, hostCfg, app.Run)
		stop()
	} else {
		code, err = hal.RunWindow(hostCfg, app.Run)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}
