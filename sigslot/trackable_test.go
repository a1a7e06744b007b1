package sigslot_test

import (
	"testing"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroyReceiverDropsEveryConnection(t *testing.T) {
	var sigA, sigB sigslot.Signal[int]
	var log []int
	ps := newTaps(&log, 2)
	p, other := ps[0], ps[1]

	sigA.Connect(p.handler())
	sigA.Connect(other.handler())
	sigA.Connect(sigslot.Method(p, (*tap).OnOther))
	sigB.Connect(p.handler())
	require.Equal(t, 3, p.CountSignalBindings())

	p.Destroy()
	assert.Zero(t, p.CountSignalBindings())
	assert.Equal(t, 1, sigA.CountConnections())
	assert.Zero(t, sigB.CountConnections())
	assert.True(t, sigA.IsConnectedTo(other.handler()))
	require.NoError(t, sigslot.Check(&sigA, &sigB, p, other))

	assert.NotPanics(t, p.Destroy, "destroying twice")

	sigA.Connect(p.handler())
	sigA.Emit(5)
	assert.Equal(t, []int{2, 1}, log, "a destroyed receiver can be connected again")
}

func TestDestroySignalDropsBothSides(t *testing.T) {
	var upstream, sig, downstream sigslot.Signal[int]
	var log []int
	p := newTaps(&log, 1)[0]

	upstream.ConnectSignal(&sig)
	sig.ConnectSignal(&downstream)
	sig.Connect(p.handler())

	sig.Destroy()
	assert.Zero(t, sig.CountConnections())
	assert.Zero(t, sig.CountSignalBindings())
	assert.Zero(t, upstream.CountConnections())
	assert.Zero(t, downstream.CountSignalBindings())
	assert.Zero(t, p.CountSignalBindings())
	require.NoError(t, sigslot.Check(&upstream, &sig, &downstream, p))
}

func TestUnbindAllSignalsTo(t *testing.T) {
	var sigA, sigB sigslot.Signal[int]
	var sigS sigslot.Signal[string]
	var log []int
	p := newTaps(&log, 1)[0]
	onOther := sigslot.Method(p, (*tap).OnOther)

	sigA.Connect(p.handler())
	sigA.Connect(onOther)
	sigB.Connect(p.handler())
	sigS.Connect(sigslot.Method(p, func(p *tap, _ string, slot *sigslot.Slot) {}))

	assert.Equal(t, 2, p.CountSignalBindingsTo(p.handler()))
	assert.Equal(t, 1, p.CountSignalBindingsTo(onOther))

	p.UnbindAllSignalsTo(p.handler())
	assert.Zero(t, p.CountSignalBindingsTo(p.handler()))
	assert.Equal(t, 2, p.CountSignalBindings())
	assert.Equal(t, 1, sigA.CountConnections())
	assert.True(t, sigA.IsConnectedTo(onOther))
	assert.Zero(t, sigB.CountConnections())
	assert.Equal(t, 1, sigS.CountConnections(), "handlers of another argument type never match")
	require.NoError(t, sigslot.Check(&sigA, &sigB, &sigS, p))
}

func TestBindingsTrackForwarding(t *testing.T) {
	var a, b, c sigslot.Signal[int]
	a.ConnectSignal(&c)
	b.ConnectSignal(&c)
	b.ConnectSignal(&c)

	assert.Equal(t, 3, c.CountSignalBindings())
	c.UnbindAllSignals()
	assert.Zero(t, a.CountConnections())
	assert.Zero(t, b.CountConnections())
}
