// Package notify is a multi-listener event broadcaster.
//
// Listeners are invoked in registration order. A listener may release its own
// cookie, or any other, while a dispatch is running: the release takes effect once
// the outermost dispatch returns, so the set of listeners seen by one Dispatch call
// is exactly the set registered when that call began.
package notify

type detacher interface {
	detach(id uint32)
}

// Cookie is a subscription handle. Releasing it unsubscribes the listener.
type Cookie struct {
	id     uint32
	parent detacher
}

// Release unsubscribes. It is safe to call more than once, on a nil cookie, and
// after the notifier has been closed.
func (c *Cookie) Release() {
	if c == nil || c.parent == nil {
		return
	}
	c.parent.detach(c.id)
	c.parent = nil
}

// Cookies releases a group of subscriptions at once.
type Cookies []*Cookie

func (cs Cookies) Release() {
	for _, c := range cs {
		c.Release()
	}
}

type listener[T any] struct {
	id       uint32
	fn       func(T)
	released bool
}

type Notifier[T any] struct {
	listeners   []*listener[T]
	nextID      uint32
	dispatching int
	dirty       bool
	closed      bool
}

func New[T any]() *Notifier[T] {
	return &Notifier[T]{}
}

func (n *Notifier[T]) Subscribe(fn func(T)) *Cookie {
	if n.closed {
		return &Cookie{}
	}
	n.nextID++
	n.listeners = append(n.listeners, &listener[T]{id: n.nextID, fn: fn})
	return &Cookie{id: n.nextID, parent: n}
}

// Dispatch calls every listener registered at the moment of the call.
func (n *Notifier[T]) Dispatch(arg T) {
	if n.closed || len(n.listeners) == 0 {
		return
	}
	snapshot := n.listeners[:len(n.listeners):len(n.listeners)]

	n.dispatching++
	defer func() {
		n.dispatching--
		if n.dispatching == 0 && n.dirty {
			n.compact()
		}
	}()

	for _, l := range snapshot {
		l.fn(arg)
	}
}

// Len returns the number of live subscriptions.
func (n *Notifier[T]) Len() int {
	count := 0
	for _, l := range n.listeners {
		if !l.released {
			count++
		}
	}
	return count
}

// Close drops all listeners. Cookies released afterwards are no-ops.
func (n *Notifier[T]) Close() {
	n.closed = true
	n.listeners = nil
}

func (n *Notifier[T]) detach(id uint32) {
	if n.closed {
		return
	}
	for _, l := range n.listeners {
		if l.id == id {
			l.released = true
			n.dirty = true
			break
		}
	}
	if n.dispatching == 0 {
		n.compact()
	}
}

func (n *Notifier[T]) compact() {
	kept := make([]*listener[T], 0, len(n.listeners))
	for _, l := range n.listeners {
		if !l.released {
			kept = append(kept, l)
		}
	}
	n.listeners = kept
	n.dirty = false
}
