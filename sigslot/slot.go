package sigslot

import "github.com/delaneyj/slotparty/binode"

// Slot is the trailing argument of every receiving method. It describes the
// emission in progress and is only valid until the method returns; do not
// retain it.
//
// Internally a Slot is the emission cursor. It is registered on the
// connection being invoked, so dropping that connection (or any other)
// during the call moves the cursor to a live successor instead of leaving
// it on a severed node.
type Slot struct {
	emitter any
	cursor  binode.Cursor[*token]
}

// token returns the connection being invoked, nil once it has been dropped.
func (s *Slot) token() *token {
	if s.cursor.Relocated() {
		return nil
	}
	if n := s.cursor.Node(); n != nil {
		return n.Value
	}
	return nil
}

// Connected reports whether the connection being invoked still exists.
func (s *Slot) Connected() bool {
	return s.token() != nil
}

// Receiver returns the receiver the current connection delivers to, nil if
// the connection was dropped during this call.
func (s *Slot) Receiver() Receiver {
	tok := s.token()
	if tok == nil || tok.binding == nil {
		return nil
	}
	return tok.binding.owner
}

// EmitterOf returns the signal whose Emit invoked the current method, or nil
// if that signal does not carry A. Fixed arity signals report their embedded
// Signal[ArgsN].
func EmitterOf[A any](s *Slot) *Signal[A] {
	sig, _ := s.emitter.(*Signal[A])
	return sig
}
