package sigslot

import "github.com/delaneyj/slotparty/binode"

// Receiver is anything that can be the far end of a connection. Embed
// Trackable to implement it.
type Receiver interface {
	trackable() *Trackable
}

// Trackable holds the inbound connections of a receiver. Embed it in any
// type whose methods are connected to signals:
//
//	type Button struct {
//		sigslot.Trackable
//	}
//
//	func (b *Button) OnPress(at int, slot *sigslot.Slot) {}
//
// The zero value has no connections. A Trackable must not be copied after
// a connection has been made to it.
type Trackable struct {
	bindings binode.List[*binding]
}

func (t *Trackable) trackable() *Trackable {
	return t
}

// Destroy drops every connection made to t. The signals on the other side
// lose the matching connections; an emission currently running over one of
// them continues with the next connection.
func (t *Trackable) Destroy() {
	t.UnbindAllSignals()
}

// UnbindSignal drops the connection slot is currently invoking, provided that
// connection targets t. It does nothing for a slot delivering to another
// receiver or for a connection already dropped during this call.
func (t *Trackable) UnbindSignal(slot *Slot) {
	if slot == nil {
		return
	}
	tok := slot.token()
	if tok == nil || tok.binding == nil || tok.binding.owner.trackable() != t {
		return
	}
	tok.destroy()
}

// UnbindAllSignals drops every connection made to t.
func (t *Trackable) UnbindAllSignals() {
	for n := t.bindings.Back(); n != nil; n = t.bindings.Back() {
		n.Value.sever()
	}
}

// UnbindAllSignalsTo drops every connection to t whose handler matches m,
// whichever signal owns it.
func (t *Trackable) UnbindAllSignalsTo(m Matcher) {
	for b := range t.bindings.Backward() {
		if b.token != nil && m.matches(b.token) {
			b.sever()
		}
	}
}

// CountSignalBindings returns the number of connections made to t.
func (t *Trackable) CountSignalBindings() int {
	return t.bindings.Len()
}

// CountSignalBindingsTo returns the number of connections made to t whose
// handler matches m.
func (t *Trackable) CountSignalBindingsTo(m Matcher) int {
	count := 0
	for b := range t.bindings.All() {
		if b.token != nil && m.matches(b.token) {
			count++
		}
	}
	return count
}

// binding is the receiver side of one connection.
type binding struct {
	node  binode.Node[*binding]
	owner Receiver
	token *token
}

func newBinding() *binding {
	b := &binding{}
	b.node.Value = b
	return b
}

func insertBinding(r Receiver, b *binding, index int) {
	if b.owner != nil {
		panic("sigslot: binding already owned")
	}
	b.owner = r
	r.trackable().bindings.Insert(&b.node, index)
}

func (b *binding) sever() {
	if tok := b.token; tok != nil {
		b.token = nil
		tok.binding = nil
		tok.destroy()
	}
	if l := b.node.List(); l != nil {
		l.Remove(&b.node)
	}
}
