// ABOUTME: Generic multi-subscriber change notifier.
// ABOUTME: Subscribe returns a disposable unsubscribe handle; delivery is synchronous.
package watch

import "sync"

// Notifier fans a value out to every registered subscriber. Publish invokes
// subscribers synchronously on the calling goroutine, in subscription order.
// The zero value is ready to use.
type Notifier[T any] struct {
	mu   sync.Mutex
	next int
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a handle that removes it again.
// Calling the handle more than once is safe.
func (n *Notifier[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.subs = append(n.subs, subscriber[T]{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers v to all current subscribers.
func (n *Notifier[T]) Publish(v T) {
	n.mu.Lock()
	subs := make([]subscriber[T], len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of active subscribers.
func (n *Notifier[T]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
