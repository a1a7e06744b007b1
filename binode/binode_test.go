package binode_test

import (
	"slices"
	"testing"

	"github.com/delaneyj/slotparty/binode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodes(values ...int) []*binode.Node[int] {
	ns := make([]*binode.Node[int], len(values))
	for i, v := range values {
		ns[i] = &binode.Node[int]{Value: v}
	}
	return ns
}

func pushAll(l *binode.List[int], ns []*binode.Node[int]) {
	for _, n := range ns {
		l.PushBack(n)
	}
}

func TestPushFrontBack(t *testing.T) {
	l := &binode.List[int]{}
	ns := nodes(1, 2, 3)

	l.PushBack(ns[1])
	l.PushFront(ns[0])
	l.PushBack(ns[2])

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))
	assert.Same(t, ns[0], l.Front())
	assert.Same(t, ns[2], l.Back())
	for _, n := range ns {
		assert.Same(t, l, n.List())
	}
}

func TestInsert(t *testing.T) {
	cases := []struct {
		name  string
		index int
		want  []int
	}{
		{"head", 0, []int{9, 1, 2, 3}},
		{"second", 1, []int{1, 9, 2, 3}},
		{"past tail clamps", 10, []int{1, 2, 3, 9}},
		{"append", -1, []int{1, 2, 3, 9}},
		{"before last", -2, []int{1, 2, 9, 3}},
		{"past head clamps", -10, []int{9, 1, 2, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := &binode.List[int]{}
			pushAll(l, nodes(1, 2, 3))
			l.Insert(&binode.Node[int]{Value: 9}, c.index)
			assert.Equal(t, c.want, slices.Collect(l.All()))
			back := slices.Collect(l.Backward())
			slices.Reverse(back)
			assert.Equal(t, c.want, back)
			assert.Equal(t, len(c.want), l.Len())
		})
	}

	t.Run("empty list", func(t *testing.T) {
		for _, index := range []int{-3, -1, 0, 3} {
			l := &binode.List[int]{}
			n := &binode.Node[int]{Value: 7}
			l.Insert(n, index)
			assert.Same(t, n, l.Front())
			assert.Same(t, n, l.Back())
		}
	})
}

func TestAt(t *testing.T) {
	l := &binode.List[int]{}
	pushAll(l, nodes(1, 2, 3))

	assert.Equal(t, 1, l.At(0).Value)
	assert.Equal(t, 3, l.At(2).Value)
	assert.Nil(t, l.At(3))
	assert.Equal(t, 3, l.At(-1).Value)
	assert.Equal(t, 1, l.At(-3).Value)
	assert.Nil(t, l.At(-4))
}

func TestRemove(t *testing.T) {
	l := &binode.List[int]{}
	ns := nodes(1, 2, 3)
	pushAll(l, ns)

	require.True(t, l.Remove(ns[1]))
	assert.False(t, ns[1].Linked())
	assert.Nil(t, ns[1].Next())
	assert.Nil(t, ns[1].Prev())
	assert.Equal(t, []int{1, 3}, slices.Collect(l.All()))

	assert.False(t, l.Remove(ns[1]), "removing twice is refused")

	other := &binode.List[int]{}
	assert.False(t, other.Remove(ns[0]), "foreign nodes are refused")

	require.True(t, l.Remove(ns[0]))
	require.True(t, l.Remove(ns[2]))
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestRemoveWhileIterating(t *testing.T) {
	l := &binode.List[int]{}
	ns := nodes(1, 2, 3, 4)
	pushAll(l, ns)

	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
		l.Remove(ns[v-1])
	}
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Zero(t, l.Len())
}

func TestDoubleLinkPanics(t *testing.T) {
	l := &binode.List[int]{}
	n := &binode.Node[int]{}
	l.PushBack(n)
	assert.Panics(t, func() { l.PushBack(n) })
	assert.Panics(t, func() { (&binode.List[int]{}).PushFront(n) })
}
