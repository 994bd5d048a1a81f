package kernel

import (
	"fmt"
	"sync"
	"time"
)

// MessageQueue is a bounded FIFO of fixed-type messages.
//
// Any number of goroutines may Put and Get. Once freed, pending and future
// calls fail with StatusErrorResource.
type MessageQueue[T any] struct {
	ch       chan T
	freed    chan struct{}
	freeOnce sync.Once
}

// NewMessageQueue allocates a queue holding at most capacity messages.
func NewMessageQueue[T any](capacity int) (*MessageQueue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("kernel: queue capacity %d", capacity)
	}
	return &MessageQueue[T]{
		ch:    make(chan T, capacity),
		freed: make(chan struct{}),
	}, nil
}

// Put enqueues msg. A zero timeout never blocks and reports
// StatusErrorResource when the queue is full; WaitForever blocks until there
// is room.
func (q *MessageQueue[T]) Put(msg T, timeout time.Duration) Status {
	select {
	case <-q.freed:
		return StatusErrorResource
	default:
	}

	select {
	case q.ch <- msg:
		return StatusOK
	default:
		if timeout == 0 {
			return StatusErrorResource
		}
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}

	select {
	case q.ch <- msg:
		return StatusOK
	case <-q.freed:
		return StatusErrorResource
	case <-deadline:
		return StatusErrorTimeout
	}
}

// Get dequeues the oldest message. A zero timeout never blocks and reports
// StatusErrorResource when the queue is empty; WaitForever blocks until a
// message arrives.
func (q *MessageQueue[T]) Get(timeout time.Duration) (T, Status) {
	var zero T

	select {
	case msg := <-q.ch:
		return msg, StatusOK
	case <-q.freed:
		return zero, StatusErrorResource
	default:
		if timeout == 0 {
			return zero, StatusErrorResource
		}
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}

	select {
	case msg := <-q.ch:
		return msg, StatusOK
	case <-q.freed:
		return zero, StatusErrorResource
	case <-deadline:
		return zero, StatusErrorTimeout
	}
}

// Count returns the number of queued messages.
func (q *MessageQueue[T]) Count() int { return len(q.ch) }

// Capacity returns the maximum number of queued messages.
func (q *MessageQueue[T]) Capacity() int { return cap(q.ch) }

// Free releases the queue and wakes every blocked caller.
func (q *MessageQueue[T]) Free() {
	q.freeOnce.Do(func() { close(q.freed) })
}
