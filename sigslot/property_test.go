package sigslot_test

import (
	"math/rand/v2"
	"testing"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/stretchr/testify/require"
)

// TestRandomOperationsKeepPairing drives a small graph of signals and
// receivers through random connects, disconnects, destroys and emissions
// whose handlers mutate the graph, checking the token/binding pairing after
// every step. Forwarding only goes from lower to higher signal index so no
// cycle can form.
func TestRandomOperationsKeepPairing(t *testing.T) {
	const (
		signalCount = 4
		tapCount    = 6
		steps       = 3000
	)
	r := rand.New(rand.NewPCG(7, 11))

	var log []int
	signals := make([]*sigslot.Signal[int], signalCount)
	for i := range signals {
		signals[i] = &sigslot.Signal[int]{}
	}
	ps := newTaps(&log, tapCount)
	all := append(receivers(signals...), receivers(ps...)...)

	check := func() {
		t.Helper()
		require.NoError(t, sigslot.Check(all...))

		tokens, bindings := 0, 0
		for _, s := range signals {
			tokens += s.CountConnections()
			bindings += s.CountSignalBindings()
		}
		for _, p := range ps {
			bindings += p.CountSignalBindings()
		}
		require.Equal(t, tokens, bindings)
	}

	for _, p := range ps {
		p.onHit = func(p *tap, slot *sigslot.Slot) {
			switch r.IntN(8) {
			case 0:
				p.UnbindSignal(slot)
			case 1:
				signals[r.IntN(signalCount)].DisconnectRange(r.IntN(3)-1, 1)
			case 2:
				p.Destroy()
			case 3:
				require.NoError(t, sigslot.Check(all...))
			}
		}
	}

	for range steps {
		sig := signals[r.IntN(signalCount)]
		p := ps[r.IntN(tapCount)]
		switch r.IntN(9) {
		case 0, 1, 2:
			sig.ConnectAt(p.handler(), r.IntN(7)-3)
		case 3:
			i := r.IntN(signalCount - 1)
			j := i + 1 + r.IntN(signalCount-1-i)
			signals[i].ConnectSignalAt(signals[j], r.IntN(5)-2)
		case 4:
			sig.DisconnectRange(r.IntN(5)-2, r.IntN(4)-1)
		case 5:
			sig.Disconnect(p.handler(), r.IntN(5)-2, r.IntN(3))
		case 6:
			if r.IntN(2) == 0 {
				p.Destroy()
			} else {
				sig.Destroy()
			}
		default:
			log = log[:0]
			sig.Emit(r.Int())
		}
		check()
	}
}

func TestEmitReachesEveryConnection(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	var log []int
	ps := newTaps(&log, 8)

	for range 50 {
		var sig sigslot.Signal[int]
		for range r.IntN(20) {
			sig.ConnectAt(ps[r.IntN(len(ps))].handler(), r.IntN(9)-4)
		}
		log = log[:0]
		sig.Emit(0)
		require.Len(t, log, sig.CountConnections())
		sig.Destroy()
	}
}
