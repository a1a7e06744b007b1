package sigslot

import (
	"errors"

	"github.com/delaneyj/slotparty/binode"
)

var (
	ErrEmptyHandler = errors.New("sigslot: connect of empty handler")
	ErrNilSignal    = errors.New("sigslot: connect of nil signal")
)

// Emitter is implemented by Signal[A] and by the fixed arity signals built
// on it, so any of them can be the target of a forwarding connection.
type Emitter[A any] interface {
	Receiver
	core() *Signal[A]
}

// Signal broadcasts a value of type A to its connections, in connection
// order. A Signal is itself a receiver, so signals can be chained.
//
// Handlers run synchronously inside Emit and may connect, disconnect or
// destroy anything, including the connection being invoked and the signal
// itself. The zero value is ready to use and must not be copied after the
// first connection.
type Signal[A any] struct {
	Trackable
	tokens binode.List[*token]
}

func (s *Signal[A]) core() *Signal[A] {
	return s
}

func (s *Signal[A]) tokenList() *binode.List[*token] {
	return &s.tokens
}

// Connect appends a connection to h.
func (s *Signal[A]) Connect(h Handler[A]) {
	s.ConnectAt(h, -1)
}

// ConnectAt inserts a connection to h at index. Non-negative indexes count
// from the first connection, negative ones from the last (-1 appends).
// Out of range indexes clamp to the nearest end. Connecting the same handler
// twice yields two independent connections.
func (s *Signal[A]) ConnectAt(h Handler[A], index int) {
	if h.call == nil {
		panic(ErrEmptyHandler)
	}
	s.link(newToken(h.call), h.receiver, index)
}

// ConnectSignal appends a connection that re-emits every value on other.
func (s *Signal[A]) ConnectSignal(other Emitter[A]) {
	s.ConnectSignalAt(other, -1)
}

// ConnectSignalAt inserts a forwarding connection to other at index, with
// the same index rules as ConnectAt. Forwarding into a cycle recurses
// without bound.
func (s *Signal[A]) ConnectSignalAt(other Emitter[A], index int) {
	if other == nil {
		panic(ErrNilSignal)
	}
	target := other.core()
	if target == nil {
		panic(ErrNilSignal)
	}
	s.link(newToken(target), target, index)
}

func (s *Signal[A]) link(tok *token, r Receiver, index int) {
	b := newBinding()
	pair(tok, b)
	tok.signal = s
	s.tokens.Insert(&tok.node, index)
	// emission order only depends on the token position
	insertBinding(r, b, -1)
}

// Disconnect removes up to count connections to h, scanning forward from
// startPos when it is non-negative and backward from the end otherwise, so
// (-1, 1) removes the most recent one. A negative count removes every match
// in range. A count of 0 removes nothing. It returns the number removed.
func (s *Signal[A]) Disconnect(h Handler[A], startPos, count int) int {
	return s.disconnect(startPos, count, h.matches)
}

// DisconnectSignal removes up to count forwarding connections to other,
// with the same scanning rules as Disconnect.
func (s *Signal[A]) DisconnectSignal(other Emitter[A], startPos, count int) int {
	return s.disconnect(startPos, count, forwardsTo(other))
}

// DisconnectRange removes up to count connections of any kind starting at
// startPos, with the same scanning rules as Disconnect.
func (s *Signal[A]) DisconnectRange(startPos, count int) int {
	return s.disconnect(startPos, count, nil)
}

// DisconnectAllOf removes every connection to h.
func (s *Signal[A]) DisconnectAllOf(h Handler[A]) {
	s.disconnect(0, -1, h.matches)
}

// DisconnectAllSignal removes every forwarding connection to other.
func (s *Signal[A]) DisconnectAllSignal(other Emitter[A]) {
	s.disconnect(0, -1, forwardsTo(other))
}

// DisconnectAll removes every connection.
func (s *Signal[A]) DisconnectAll() {
	for n := s.tokens.Front(); n != nil; n = s.tokens.Front() {
		n.Value.destroy()
	}
}

func (s *Signal[A]) disconnect(startPos, count int, match func(*token) bool) int {
	if count == 0 {
		return 0
	}

	removed := 0
	forward := startPos >= 0
	for n := s.tokens.At(startPos); n != nil; {
		tok := n.Value
		if forward {
			n = n.Next()
		} else {
			n = n.Prev()
		}

		if match != nil && !match(tok) {
			continue
		}
		tok.destroy()
		removed++
		if removed == count {
			break
		}
	}
	return removed
}

func forwardsTo[A any](other Emitter[A]) func(*token) bool {
	if other == nil {
		return func(*token) bool { return false }
	}
	target := other.core()
	return func(tok *token) bool {
		sig, ok := tok.target.(*Signal[A])
		return ok && sig == target
	}
}

// IsConnectedTo reports whether at least one connection to h exists.
func (s *Signal[A]) IsConnectedTo(h Handler[A]) bool {
	return s.find(h.matches)
}

// IsConnectedToSignal reports whether s forwards to other.
func (s *Signal[A]) IsConnectedToSignal(other Emitter[A]) bool {
	return s.find(forwardsTo(other))
}

// IsConnectedToReceiver reports whether any connection of s, delegate or
// forwarding, ends at r. Whichever of the two connection lists is shorter is
// walked.
func (s *Signal[A]) IsConnectedToReceiver(r Receiver) bool {
	if r == nil {
		return false
	}
	t := r.trackable()
	if s.tokens.Len() <= t.bindings.Len() {
		return s.find(func(tok *token) bool {
			return tok.binding != nil && tok.binding.owner.trackable() == t
		})
	}
	for b := range t.bindings.All() {
		if b.token != nil && b.token.signal == any(s) {
			return true
		}
	}
	return false
}

func (s *Signal[A]) find(match func(*token) bool) bool {
	for tok := range s.tokens.All() {
		if match(tok) {
			return true
		}
	}
	return false
}

// CountConnections returns the number of connections of s.
func (s *Signal[A]) CountConnections() int {
	return s.tokens.Len()
}

// CountConnectionsOf returns the number of connections to h.
func (s *Signal[A]) CountConnectionsOf(h Handler[A]) int {
	return s.count(h.matches)
}

// CountConnectionsToSignal returns the number of forwarding connections to
// other.
func (s *Signal[A]) CountConnectionsToSignal(other Emitter[A]) int {
	return s.count(forwardsTo(other))
}

func (s *Signal[A]) count(match func(*token) bool) int {
	count := 0
	for tok := range s.tokens.All() {
		if match(tok) {
			count++
		}
	}
	return count
}

// Emit invokes every connection with arg. Delegate connections receive a
// *Slot describing the call in progress; forwarding connections emit arg on
// their target signal.
func (s *Signal[A]) Emit(arg A) {
	slot := Slot{emitter: s}
	defer slot.cursor.Close()

	for n := slot.cursor.Seek(s.tokens.Front()); n != nil; n = slot.cursor.Advance() {
		switch target := n.Value.target.(type) {
		case caller[A]:
			target.invoke(arg, &slot)
		case *Signal[A]:
			target.Emit(arg)
		}
	}
}

// Destroy removes every connection of s and every connection made to it by
// other signals.
func (s *Signal[A]) Destroy() {
	s.DisconnectAll()
	s.UnbindAllSignals()
}

// Ref returns a view of s that can connect and disconnect but not emit.
func (s *Signal[A]) Ref() Ref[A] {
	return Ref[A]{signal: s}
}
