package sigslot_test

import (
	"github.com/delaneyj/slotparty/sigslot"
)

// observer mirrors a typical widget: it records what it received and
// offers handlers that tear connections down from inside an emission.
type observer struct {
	sigslot.Trackable

	count1 int
	count2 [2]int
	hits   int
}

func (o *observer) OnCount1(count int, _ *sigslot.Slot) {
	o.count1 = count
	o.hits++
}

func (o *observer) OnCount2(count1, count2 int, _ *sigslot.Slot) {
	o.count2 = [2]int{count1, count2}
	o.hits++
}

func (o *observer) OnUnbindSlot(_ int, slot *sigslot.Slot) {
	o.UnbindSignal(slot)
}

func (o *observer) OnUnbindSlotTwice(_ int, slot *sigslot.Slot) {
	o.UnbindSignal(slot)
	o.UnbindSignal(slot)
}

func (o *observer) OnUnbindAllSignals(_ int, _ *sigslot.Slot) {
	o.UnbindAllSignals()
}

func (o *observer) OnDestroy(_ int, _ *sigslot.Slot) {
	o.Destroy()
}

// tap appends its id to a shared log and then runs an optional hook, so
// tests can assert the exact order in which an emission reached receivers.
type tap struct {
	sigslot.Trackable

	id    int
	log   *[]int
	seen  []int
	onHit func(p *tap, slot *sigslot.Slot)
}

func newTaps(log *[]int, n int) []*tap {
	ps := make([]*tap, n)
	for i := range ps {
		ps[i] = &tap{id: i + 1, log: log}
	}
	return ps
}

func (p *tap) OnInt(v int, slot *sigslot.Slot) {
	*p.log = append(*p.log, p.id)
	p.seen = append(p.seen, v)
	if p.onHit != nil {
		p.onHit(p, slot)
	}
}

func (p *tap) OnOther(v int, _ *sigslot.Slot) {
	p.seen = append(p.seen, -v)
}

func (p *tap) handler() sigslot.Handler[int] {
	return sigslot.Method(p, (*tap).OnInt)
}

func connectAll(sig *sigslot.Signal[int], ps []*tap) {
	for _, p := range ps {
		sig.Connect(p.handler())
	}
}

func receivers[T sigslot.Receiver](ts ...T) []sigslot.Receiver {
	rs := make([]sigslot.Receiver, len(ts))
	for i, t := range ts {
		rs[i] = t
	}
	return rs
}
