//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ HostConfig, _ func(h HAL) int) (int, error) {
	return 0, errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
