package sigslot

// Ref exposes the connection surface of a signal without Emit. Owners hand
// out a Ref so that other code can subscribe while only the owner emits.
//
//	type Timer struct {
//		timeout sigslot.Signal[time.Time]
//	}
//
//	func (t *Timer) Timeout() sigslot.Ref[time.Time] { return t.timeout.Ref() }
type Ref[A any] struct {
	signal *Signal[A]
}

func (r Ref[A]) Connect(h Handler[A]) {
	r.signal.Connect(h)
}

func (r Ref[A]) ConnectAt(h Handler[A], index int) {
	r.signal.ConnectAt(h, index)
}

func (r Ref[A]) ConnectSignal(other Emitter[A]) {
	r.signal.ConnectSignal(other)
}

func (r Ref[A]) ConnectSignalAt(other Emitter[A], index int) {
	r.signal.ConnectSignalAt(other, index)
}

func (r Ref[A]) Disconnect(h Handler[A], startPos, count int) int {
	return r.signal.Disconnect(h, startPos, count)
}

func (r Ref[A]) DisconnectSignal(other Emitter[A], startPos, count int) int {
	return r.signal.DisconnectSignal(other, startPos, count)
}

func (r Ref[A]) DisconnectRange(startPos, count int) int {
	return r.signal.DisconnectRange(startPos, count)
}

func (r Ref[A]) DisconnectAllOf(h Handler[A]) {
	r.signal.DisconnectAllOf(h)
}

func (r Ref[A]) DisconnectAllSignal(other Emitter[A]) {
	r.signal.DisconnectAllSignal(other)
}

func (r Ref[A]) DisconnectAll() {
	r.signal.DisconnectAll()
}

func (r Ref[A]) IsConnectedTo(h Handler[A]) bool {
	return r.signal.IsConnectedTo(h)
}

func (r Ref[A]) IsConnectedToSignal(other Emitter[A]) bool {
	return r.signal.IsConnectedToSignal(other)
}

func (r Ref[A]) IsConnectedToReceiver(recv Receiver) bool {
	return r.signal.IsConnectedToReceiver(recv)
}

func (r Ref[A]) CountConnections() int {
	return r.signal.CountConnections()
}

func (r Ref[A]) CountConnectionsOf(h Handler[A]) int {
	return r.signal.CountConnectionsOf(h)
}

func (r Ref[A]) CountConnectionsToSignal(other Emitter[A]) int {
	return r.signal.CountConnectionsToSignal(other)
}

// CountBindings returns the number of signals forwarding into the
// referenced signal.
func (r Ref[A]) CountBindings() int {
	return r.signal.CountSignalBindings()
}
