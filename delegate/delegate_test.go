package delegate_test

import (
	"testing"

	"github.com/delaneyj/slotparty/delegate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockup struct {
	count int
}

func (m *mockup) Foo(param int) int {
	m.count = param
	return m.count
}

func (m *mockup) ConstFoo(param int) int {
	return m.count
}

func (m *mockup) VirtualFoo(param int) int {
	return param + m.count
}

func (m *mockup) Store(a, b int) {
	m.count = a * b
}

func (m mockup) Peek() int {
	return m.count
}

// virtualFooer lets a delegate be built on the interface method so the
// receiver's implementation is chosen at call time.
type virtualFooer interface {
	VirtualFoo(param int) int
}

type mockupSub struct {
	mockup
}

func (m *mockupSub) VirtualFoo(param int) int {
	return param - m.count
}

func TestMethodInvocation(t *testing.T) {
	obj := &mockup{}

	d := delegate.MakeFunc1(obj, (*mockup).Foo)
	require.True(t, d.IsValid())
	assert.Equal(t, 1, d.Call(1))
	assert.Equal(t, 1, obj.count)

	readOnly := delegate.MakeFunc1(obj, (*mockup).ConstFoo)
	assert.Equal(t, 1, readOnly.Call(5))
	assert.Equal(t, 1, obj.count)

	store := delegate.MakeAction2(obj, (*mockup).Store)
	store.Call(3, 4)
	assert.Equal(t, 12, obj.count)

	byValue := delegate.MakeFunc0(*obj, mockup.Peek)
	obj.count = 99
	assert.Equal(t, 12, byValue.Call(), "value receivers are captured by copy")
}

func TestInterfaceMethodDispatchesDynamically(t *testing.T) {
	sub := &mockupSub{}
	sub.Foo(1)

	var base virtualFooer = sub
	d := delegate.MakeFunc1(base, virtualFooer.VirtualFoo)
	assert.Equal(t, 1, d.Call(2))

	plain := delegate.MakeFunc1(&sub.mockup, (*mockup).VirtualFoo)
	assert.Equal(t, 3, plain.Call(2))
}

func TestEquality(t *testing.T) {
	obj1, obj2 := &mockup{}, &mockup{}

	d1 := delegate.MakeFunc1(obj1, (*mockup).Foo)
	d2 := delegate.MakeFunc1(obj1, (*mockup).Foo)
	assert.True(t, d1.Equal(d2))
	assert.True(t, d2.Equal(d1))
	assert.Equal(t, d1.Code(), d2.Code())

	assert.False(t, d1.Equal(delegate.MakeFunc1(obj1, (*mockup).ConstFoo)), "different method")
	assert.False(t, d1.Equal(delegate.MakeFunc1(obj2, (*mockup).Foo)), "different receiver")

	assert.True(t, d1.Targets(obj1))
	assert.False(t, d1.Targets(obj2))
	assert.Same(t, obj1, d1.Receiver())

	var e1, e2 delegate.Func1[int, int]
	assert.True(t, e1.Equal(e2))
	assert.False(t, e1.Equal(d1))
}

func TestEmptyDelegate(t *testing.T) {
	var d delegate.Action1[int]
	assert.False(t, d.IsValid())
	assert.Nil(t, d.Receiver())
	assert.Zero(t, d.Code())
	assert.PanicsWithValue(t, delegate.ErrEmpty, func() { d.Call(1) })

	var f delegate.Func0[string]
	assert.PanicsWithValue(t, delegate.ErrEmpty, func() { f.Call() })
}

func TestConstructionGuards(t *testing.T) {
	var nilObj *mockup
	assert.PanicsWithValue(t, delegate.ErrNilReceiver, func() {
		delegate.MakeFunc1(nilObj, (*mockup).Foo)
	})

	var nilFooer virtualFooer
	assert.PanicsWithValue(t, delegate.ErrNilReceiver, func() {
		delegate.MakeFunc1(nilFooer, virtualFooer.VirtualFoo)
	})

	assert.PanicsWithValue(t, delegate.ErrNilMethod, func() {
		delegate.MakeAction1[*mockup, int](&mockup{}, nil)
	})
}

func TestEveryArity(t *testing.T) {
	rec := &recorder{}

	delegate.MakeAction0(rec, (*recorder).zero).Call()
	delegate.MakeAction1(rec, (*recorder).one).Call(1)
	delegate.MakeAction3(rec, (*recorder).three).Call(1, 2, 3)
	delegate.MakeAction4(rec, (*recorder).four).Call(1, 2, 3, 4)
	assert.Equal(t, []int{0, 1, 6, 10}, rec.sums)

	assert.Equal(t, 5, delegate.MakeFunc2(rec, (*recorder).add).Call(2, 3))
	assert.Equal(t, 6, delegate.MakeFunc3(rec, (*recorder).add3).Call(1, 2, 3))
}

type recorder struct {
	sums []int
}

func (r *recorder) zero()                { r.sums = append(r.sums, 0) }
func (r *recorder) one(a int)            { r.sums = append(r.sums, a) }
func (r *recorder) three(a, b, c int)    { r.sums = append(r.sums, a+b+c) }
func (r *recorder) four(a, b, c, d int)  { r.sums = append(r.sums, a+b+c+d) }
func (r *recorder) add(a, b int) int     { return a + b }
func (r *recorder) add3(a, b, c int) int { return a + b + c }

type ints []int

func (s ints) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

func (s ints) Clear() {
	clear(s)
}

type box struct {
	vals []int
}

func (b box) Len() int { return len(b.vals) }

func TestSliceReceiver(t *testing.T) {
	data := ints{1, 2, 3}
	d := delegate.MakeFunc0(data, ints.Sum)
	require.NotPanics(t, func() { d.Equal(d) })
	assert.True(t, d.Equal(d))
	assert.Equal(t, 6, d.Call())

	assert.True(t, d.Equal(delegate.MakeFunc0(data, ints.Sum)), "same backing array")
	assert.False(t, d.Equal(delegate.MakeFunc0(ints{1, 2, 3}, ints.Sum)), "equal contents, other array")
	assert.False(t, d.Equal(delegate.MakeFunc0(data[:2], ints.Sum)), "shorter view")

	assert.True(t, d.Targets(data))
	assert.False(t, d.Targets(ints{1, 2, 3}))
	assert.NotPanics(t, func() { d.Targets(box{}) })
	assert.False(t, d.Targets(box{}))

	wipe := delegate.MakeAction0(data, ints.Clear)
	assert.NotPanics(t, func() { wipe.Equal(wipe) })
	wipe.Call()
	assert.Equal(t, 0, d.Call())
}

func TestUncomparableReceiverIsRejected(t *testing.T) {
	assert.PanicsWithValue(t, delegate.ErrUncomparableReceiver, func() {
		delegate.MakeFunc0(box{vals: []int{1}}, box.Len)
	})
}

var staticTotal int

func addTotal(v int)       { staticTotal += v }
func subTotal(v int)       { staticTotal -= v }
func double(v int) int     { return 2 * v }
func sum3(a, b, c int) int { return a + b + c }

func TestStaticDelegate(t *testing.T) {
	staticTotal = 0
	add := delegate.MakeStaticAction1(addTotal)
	require.True(t, add.IsValid())
	assert.Equal(t, delegate.KindStatic, add.Kind())
	assert.Nil(t, add.Receiver())
	add.Call(3)
	add.Call(4)
	assert.Equal(t, 7, staticTotal)

	assert.True(t, add.Equal(delegate.MakeStaticAction1(addTotal)))
	assert.False(t, add.Equal(delegate.MakeStaticAction1(subTotal)))
	assert.True(t, add.EqualStatic(addTotal))
	assert.False(t, add.EqualStatic(subTotal))
	assert.False(t, add.EqualStatic(nil))
	assert.False(t, add.Targets(nil))

	rec := &recorder{}
	method := delegate.MakeAction1(rec, (*recorder).one)
	assert.Equal(t, delegate.KindMethod, method.Kind())
	assert.False(t, add.Equal(method))
	assert.False(t, method.EqualStatic(addTotal))

	assert.Equal(t, 10, delegate.MakeStaticFunc1(double).Call(5))
	assert.Equal(t, 6, delegate.MakeStaticFunc3(sum3).Call(1, 2, 3))

	calls := 0
	closure := delegate.MakeStaticAction0(func() { calls++ })
	closure.Call()
	closure.Call()
	assert.Equal(t, 2, calls)

	assert.PanicsWithValue(t, delegate.ErrNilMethod, func() {
		delegate.MakeStaticAction1[int](nil)
	})
}

func TestReset(t *testing.T) {
	d := delegate.MakeFunc1(&mockup{}, (*mockup).Foo)
	d.Reset()
	assert.False(t, d.IsValid())
	assert.Equal(t, delegate.KindEmpty, d.Kind())
	assert.True(t, d.Equal(delegate.Func1[int, int]{}))
	assert.PanicsWithValue(t, delegate.ErrEmpty, func() { d.Call(1) })

	a := delegate.MakeStaticAction1(addTotal)
	a.Reset()
	assert.False(t, a.IsValid())
}

func TestCallDoesNotAllocate(t *testing.T) {
	obj := &mockup{}
	d := delegate.MakeAction2(obj, (*mockup).Store)
	allocs := testing.AllocsPerRun(100, func() {
		d.Call(2, 3)
	})
	assert.Zero(t, allocs)
}

func BenchmarkCall(b *testing.B) {
	obj := &mockup{}
	d := delegate.MakeFunc1(obj, (*mockup).Foo)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Call(i)
	}
}
