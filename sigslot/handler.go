package sigslot

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotparty/delegate"
)

// caller invokes one receiving method with the argument tuple of a signal.
type caller[A any] interface {
	coded
	invoke(arg A, slot *Slot)
	equal(other caller[A]) bool
}

// Matcher selects connections by handler. Every Handler is a Matcher.
type Matcher interface {
	matches(tok *token) bool
}

// Handler is a receiving method bound to its receiver, ready to be connected
// to a Signal[A]. Build one with Method (or Method0, Method2, Method3).
// Handlers built from the same receiver and method match each other, which
// is how Disconnect, IsConnectedTo and the counting methods find
// connections.
type Handler[A any] struct {
	receiver Receiver
	call     caller[A]
}

// Method binds method to receiver for signals carrying a single argument.
//
//	sig.Connect(sigslot.Method(button, (*Button).OnPress))
func Method[T Receiver, A any](receiver T, method func(T, A, *Slot)) Handler[A] {
	return Handler[A]{
		receiver: receiver,
		call:     caller1[A]{d: delegate.MakeAction2(receiver, method)},
	}
}

// IsValid reports whether h was built by one of the Method constructors.
func (h Handler[A]) IsValid() bool {
	return h.call != nil
}

// Receiver returns the receiver h is bound to.
func (h Handler[A]) Receiver() Receiver {
	return h.receiver
}

// Hash identifies the receiver and method pair, so handlers can key maps.
// Handlers that match each other hash the same.
func (h Handler[A]) Hash() uint64 {
	if h.call == nil {
		return 0
	}
	return connectionHash(h.call.code(), h.receiver.trackable())
}

func (h Handler[A]) matches(tok *token) bool {
	if h.call == nil || tok.binding == nil || tok.binding.owner.trackable() != h.receiver.trackable() {
		return false
	}
	c, ok := tok.target.(caller[A])
	return ok && c.equal(h.call)
}

func connectionHash(code uintptr, t *Trackable) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(code))
	binary.LittleEndian.PutUint64(buf[8:], uint64(reflect.ValueOf(t).Pointer()))
	return xxhash.Sum64(buf[:])
}

type caller1[A any] struct {
	d delegate.Action2[A, *Slot]
}

func (c caller1[A]) invoke(arg A, slot *Slot) {
	c.d.Call(arg, slot)
}

func (c caller1[A]) equal(other caller[A]) bool {
	o, ok := other.(caller1[A])
	return ok && c.d.Equal(o.d)
}

func (c caller1[A]) code() uintptr {
	return c.d.Code()
}
