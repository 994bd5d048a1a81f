//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"airmouse/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowScale = 3

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard input. The application runs on its own goroutine; the window closes
// when it returns, and its exit code is returned.
func RunWindow(hostCfg HostConfig, run func(HAL) int) (int, error) {
	h, err := newHost(hostCfg)
	if err != nil {
		return 0, err
	}

	g := &hostGame{h: h, done: make(chan int, 1)}
	go func() { g.done <- run(h) }()

	ebiten.SetWindowTitle("AirMouse (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*windowScale, h.fb.height*windowScale)
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return 0, err
	}
	return g.code, nil
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte

	done chan int
	code int
}

func (g *hostGame) Update() error {
	select {
	case code := <-g.done:
		g.code = code
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		g.h.kbd.inject(KeyEvent{Code: KeyBack, Press: true})
	}
	g.h.kbd.poll()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.Snapshot(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
