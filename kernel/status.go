package kernel

import "time"

// WaitForever makes a blocking call wait without a deadline.
const WaitForever time.Duration = -1

// Status describes the outcome of a queue operation.
type Status uint8

const (
	StatusOK Status = iota
	StatusErrorTimeout
	StatusErrorResource
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusErrorTimeout:
		return "timeout"
	case StatusErrorResource:
		return "resource unavailable"
	default:
		return "unknown"
	}
}
