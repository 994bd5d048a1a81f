//go:build tinygo && baremetal

package main

import (
	"airmouse/app"
	"airmouse/hal"
	"airmouse/internal/logx"
)

func main() {
	h := hal.New()
	defer func() {
		if v := recover(); v != nil {
			app.ReportPanic(h, v)
			select {}
		}
	}()

	code := app.Run(h)
	logx.I(h.Logger(), "main", "exit code %d", code)
	select {}
}
