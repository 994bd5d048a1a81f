package hal

import "sync"

// MemFramebuffer is an RGB565 back buffer with a front copy taken on Present.
//
// Drawing goes to Buffer() from a single goroutine. Readers on other goroutines
// use Snapshot, which only ever sees complete frames.
type MemFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	front    []byte
	presents int

	flush func(frame []byte, width, height int) error
}

// NewMemFramebuffer returns a framebuffer that keeps presented frames in memory.
func NewMemFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Present publishes the back buffer and hands it to the panel, if any.
func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	if f.front != nil {
		copy(f.front, f.buf)
	}
	f.presents++
	flush := f.flush
	f.mu.Unlock()

	if flush == nil {
		return nil
	}
	return flush(f.buf, f.width, f.height)
}

// Presents returns how many frames have been presented.
func (f *MemFramebuffer) Presents() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// Snapshot copies the last presented frame into dst.
func (f *MemFramebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}

// RGBAt returns the colour of a pixel in the last presented frame.
func (f *MemFramebuffer) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.front == nil {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	return rgb888From565(uint16(f.front[off]) | uint16(f.front[off+1])<<8)
}
