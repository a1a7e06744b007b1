package sigslot

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/binode"
)

var (
	ErrBrokenPairing  = errors.New("sigslot: broken token/binding pairing")
	ErrForeignNode    = errors.New("sigslot: node linked into a foreign list")
	ErrLengthMismatch = errors.New("sigslot: list length does not match its nodes")
)

type tokenLister interface {
	tokenList() *binode.List[*token]
}

// Check walks the connections of every receiver (and, for signals, their
// outbound connections) and verifies that each token and binding is paired
// with a partner that points back at it and that every node sits in the
// list of its owner. It returns the first violation found.
func Check(receivers ...Receiver) error {
	seenReceivers := mapset.NewThreadUnsafeSet[*Trackable]()
	seenTokens := mapset.NewThreadUnsafeSet[*token]()
	seenBindings := mapset.NewThreadUnsafeSet[*binding]()

	for _, r := range receivers {
		t := r.trackable()
		if !seenReceivers.Add(t) {
			continue
		}

		walked := 0
		for b := range t.bindings.All() {
			walked++
			if !seenBindings.Add(b) {
				return fmt.Errorf("%w: binding %p listed twice", ErrForeignNode, b)
			}
			if b.node.List() != &t.bindings || b.owner == nil || b.owner.trackable() != t {
				return fmt.Errorf("%w: binding %p in receiver %p", ErrForeignNode, b, t)
			}
			if b.token == nil || b.token.binding != b {
				return fmt.Errorf("%w: binding %p", ErrBrokenPairing, b)
			}
			if !b.token.node.Linked() {
				return fmt.Errorf("%w: binding %p paired with unlinked token %p", ErrBrokenPairing, b, b.token)
			}
		}
		if walked != t.bindings.Len() {
			return fmt.Errorf("%w: receiver %p walked %d of %d bindings", ErrLengthMismatch, t, walked, t.bindings.Len())
		}

		tl, ok := r.(tokenLister)
		if !ok {
			continue
		}
		tokens := tl.tokenList()
		walked = 0
		for tok := range tokens.All() {
			walked++
			if !seenTokens.Add(tok) {
				return fmt.Errorf("%w: token %p listed twice", ErrForeignNode, tok)
			}
			if tok.node.List() != tokens {
				return fmt.Errorf("%w: token %p", ErrForeignNode, tok)
			}
			if owner, ok := tok.signal.(Receiver); !ok || owner.trackable() != t {
				return fmt.Errorf("%w: token %p reports another signal", ErrForeignNode, tok)
			}
			if tok.binding == nil || tok.binding.token != tok {
				return fmt.Errorf("%w: token %p", ErrBrokenPairing, tok)
			}
			if !tok.binding.node.Linked() {
				return fmt.Errorf("%w: token %p paired with unlinked binding %p", ErrBrokenPairing, tok, tok.binding)
			}
		}
		if walked != tokens.Len() {
			return fmt.Errorf("%w: signal %p walked %d of %d tokens", ErrLengthMismatch, t, walked, tokens.Len())
		}
	}
	return nil
}

// Stats summarises the connections of a signal.
type Stats struct {
	// Connections is the number of outbound connections.
	Connections int
	// Delegates and Forwards split Connections by kind.
	Delegates int
	Forwards  int
	// Targets is the number of distinct receiver and method pairs among the
	// delegate connections.
	Targets int
	// Bindings is the number of signals forwarding into this one.
	Bindings int
	// Emitting is the number of connections an emission is currently
	// positioned on.
	Emitting int
}

// Stats reports the current shape of s.
func (s *Signal[A]) Stats() Stats {
	targets := mapset.NewThreadUnsafeSet[uint64]()
	st := Stats{
		Connections: s.tokens.Len(),
		Bindings:    s.bindings.Len(),
	}
	for n := s.tokens.Front(); n != nil; n = n.Next() {
		if n.Marked() {
			st.Emitting++
		}
		tok := n.Value
		if tok.isForward() {
			st.Forwards++
			continue
		}
		st.Delegates++
		if tok.binding != nil {
			targets.Add(connectionHash(tok.target.(coded).code(), tok.binding.owner.trackable()))
		}
	}
	st.Targets = targets.Cardinality()
	return st
}
