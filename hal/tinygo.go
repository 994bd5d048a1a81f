//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	gpio   GPIO
	power  Power
	fb     Framebuffer
	kbd    Keyboard
}

// New returns a HAL for a Raspberry Pi Pico carrying a Pico Display pack
// (ST7789 240x135 panel, four buttons).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Outputs: GP7 right click, GP6 left click, GP22 OTG load-switch enable.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	pins := make([]GPIOPin, pinCount)
	pins[PinRightClick] = newMachinePin("GP7", machine.GP7)
	pins[PinLeftClick] = newMachinePin("GP6", machine.GP6)
	pins[PinOTG] = newMachinePin("GP22", machine.GP22)

	var kbd Keyboard = newButtonKeyboard([]button{
		{pin: machine.GP12, code: KeyLeft},  // A
		{pin: machine.GP13, code: KeyOK},    // B
		{pin: machine.GP14, code: KeyRight}, // X
		{pin: machine.GP15, code: KeyBack},  // Y
	})

	return &tinyGoHAL{
		logger: logger,
		gpio:   newPinTable(pins),
		power:  newPinPower(pins[PinOTG]),
		fb:     newPanelFramebuffer(),
		kbd:    kbd,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Power() Power     { return h.power }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
