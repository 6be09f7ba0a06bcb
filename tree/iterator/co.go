package iterator

import (
	"golang.org/x/exp/constraints"
)

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[K constraints.Ordered, V any] struct {
	items <-chan Pair[K, V]
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted or
// after Stop.
func (c CoIterator[K, V]) Items() <-chan Pair[K, V] {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
func (c CoIterator[K, V]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[K, V](someTree.Iterator())
//	for p := range co.Items() {
//		... do stuff with p.Key and p.Value ...
//		if p meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
// The tree must not be modified until the goroutine has exited.
func CoIterate[K constraints.Ordered, V any](i Iterator[K, V]) CoIterator[K, V] {
	out := make(chan Pair[K, V])
	stop := make(chan struct{})
	co := CoIterator[K, V]{
		items: out,
		stop:  stop,
	}

	if i == nil {
		close(out)
		return co
	}

	go func(out chan<- Pair[K, V], stop <-chan struct{}, i Iterator[K, V]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, i)

	return co
}
