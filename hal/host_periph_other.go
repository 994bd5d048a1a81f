//go:build !linux && !tinygo

package hal

import "errors"

func openPeriphPin(name string) (GPIOPin, error) {
	_ = name
	return nil, errors.New("hardware gpio requires linux")
}
