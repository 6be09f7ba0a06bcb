// Package testutils holds helpers shared by the tests of this module.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avlmap/tree/iterator"
	"golang.org/x/exp/constraints"
)

type TestT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called, use DrainBlocking for that.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Helper()
	drain(t, data, ch, nil)
}

// DrainBlocking is like Drain, but waits for the producer.
// The whole drain, including the final close, must finish
// within timeout.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Helper()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	drain(t, data, ch, timer)
}

func drain[T any](t TestT, data []T, ch <-chan T, timer *time.Timer) {
	t.Helper()
	t.Logf("draining: expecting %v", data)

	// a nil channel blocks forever, so without a timer
	// the default case below is taken instead
	var expired <-chan time.Time
	if timer != nil {
		expired = timer.C
	}

	recv := func() (el T, ok, blocked bool) {
		if timer == nil {
			select {
			case el, ok = <-ch:
				return el, ok, false
			default:
				return el, false, true
			}
		}
		select {
		case el, ok = <-ch:
			return el, ok, false
		case <-expired:
			return el, false, true
		}
	}

	for i, datum := range data {
		el, ok, blocked := recv()
		switch {
		case blocked:
			t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			return
		case !ok:
			t.Errorf("channel closed early, expecting %v", datum)
			return
		default:
			assert.Equal(t, datum, el)
		}
	}

	el, ok, blocked := recv()
	switch {
	case blocked:
		t.Error("at the end of draining, channel was empty but unclosed")
	case ok:
		t.Errorf("channel should be closed, but received: %v", el)
	}
}

// DrainIterator expects i to yield exactly the keys in want, in order.
func DrainIterator[K constraints.Ordered, V any](t TestT, want []K, i iterator.Iterator[K, V]) {
	t.Helper()

	var got []K
	for i.Next() {
		got = append(got, i.Key())
		if len(got) > len(want) {
			// don't loop forever on a broken iterator
			break
		}
	}

	assert.Equal(t, want, got)
	assert.False(t, i.Next(), "iterator should stay exhausted")
}
