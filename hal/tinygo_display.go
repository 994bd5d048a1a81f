//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7789"
)

const panelRowsPerTx = 8

// newPanelFramebuffer drives the Pico Display ST7789 over SPI0.
//
// The back buffer is little-endian RGB565; rows are byte-swapped into a small
// bounce buffer before each transfer because the panel expects big-endian.
func newPanelFramebuffer() *MemFramebuffer {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 62_500_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Mode:      0,
	})

	lcd := st7789.New(machine.SPI0, machine.NoPin, machine.GP16, machine.GP17, machine.GP20)
	lcd.Configure(st7789.Config{
		Width:        135,
		Height:       240,
		Rotation:     st7789.ROTATION_90,
		RowOffset:    40,
		ColumnOffset: 53,
	})
	lcd.EnableBacklight(true)

	stride := ScreenWidth * 2
	bounce := make([]byte, stride*panelRowsPerTx)

	return &MemFramebuffer{
		width:  ScreenWidth,
		height: ScreenHeight,
		stride: stride,
		buf:    make([]byte, stride*ScreenHeight),
		flush: func(frame []byte, width, height int) error {
			for y := 0; y < height; y += panelRowsPerTx {
				rows := panelRowsPerTx
				if y+rows > height {
					rows = height - y
				}
				n := swap565(bounce, frame[y*stride:(y+rows)*stride])
				if err := lcd.DrawRGBBitmap8(0, int16(y), bounce[:n], int16(width), int16(rows)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
