package sigslot

import "github.com/delaneyj/slotparty/binode"

// token is the signal side of one connection. target decides its kind:
// a caller[A] makes it a delegate token, a *Signal[A] makes it a forward
// token that re-emits on another signal.
type token struct {
	node    binode.Node[*token]
	signal  any
	binding *binding
	target  any
}

func newToken(target any) *token {
	tok := &token{target: target}
	tok.node.Value = tok
	return tok
}

func pair(tok *token, b *binding) {
	if tok.binding != nil || b.token != nil {
		panic("sigslot: token or binding already paired")
	}
	tok.binding = b
	b.token = tok
}

// destroy unlinks t from its signal and drops the paired binding. Emissions
// positioned on t are moved to its successor by the list.
func (t *token) destroy() {
	if l := t.node.List(); l != nil {
		l.Remove(&t.node)
	}
	if b := t.binding; b != nil {
		t.binding = nil
		b.token = nil
		b.sever()
	}
}

type coded interface {
	code() uintptr
}

func (t *token) isForward() bool {
	_, ok := t.target.(coded)
	return !ok
}
