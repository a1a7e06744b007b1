// Package binode provides an intrusive doubly linked list whose nodes can be
// referenced by cursors that survive the removal of the node they sit on.
//
// A Cursor registers itself on the node it currently references. When that
// node is removed from its List every registered cursor is moved to the
// removed node's successor and flagged as relocated, so a traversal that is
// in the middle of a callback never resumes from a detached node.
package binode

import "iter"

// Node is an element of a List. The zero value is an unlinked node.
type Node[T any] struct {
	Value T

	list       *List[T]
	prev, next *Node[T]

	// cursors currently positioned on this node
	marks, marksTail *Cursor[T]
}

// Next returns the following node or nil.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the preceding node or nil.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List returns the list n is linked into, nil if it is not linked.
func (n *Node[T]) List() *List[T] {
	return n.list
}

// Linked reports whether n currently belongs to a list.
func (n *Node[T]) Linked() bool {
	return n.list != nil
}

// Marked reports whether at least one cursor references n.
func (n *Node[T]) Marked() bool {
	return n.marks != nil
}

// List is a doubly linked list of nodes owned by their containing values.
// The zero value is an empty list ready to use. A List must not be copied
// once nodes have been linked into it.
type List[T any] struct {
	front, back *Node[T]
	len         int
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Front() *Node[T] {
	return l.front
}

func (l *List[T]) Back() *Node[T] {
	return l.back
}

// PushFront links n at the head of l. n must not be linked.
func (l *List[T]) PushFront(n *Node[T]) {
	l.insertBefore(n, l.front)
}

// PushBack links n at the tail of l. n must not be linked.
func (l *List[T]) PushBack(n *Node[T]) {
	l.insertAfter(n, l.back)
}

// Insert links n at index. A non-negative index counts from the head, so 0
// is the same as PushFront. A negative index counts from the tail, so -1 is
// the same as PushBack and -2 places n just before the last node. Indexes
// past either end clamp to that end.
func (l *List[T]) Insert(n *Node[T], index int) {
	if index >= 0 {
		at := l.front
		for at != nil && index > 0 {
			at = at.next
			index--
		}
		l.insertBefore(n, at)
		return
	}

	at := l.back
	for at != nil && index < -1 {
		at = at.prev
		index++
	}
	if at == nil {
		l.insertBefore(n, l.front)
		return
	}
	l.insertAfter(n, at)
}

// At returns the node at index using the same counting as Insert, or nil
// when index is out of range.
func (l *List[T]) At(index int) *Node[T] {
	if index >= 0 {
		n := l.front
		for n != nil && index > 0 {
			n = n.next
			index--
		}
		return n
	}
	n := l.back
	for n != nil && index < -1 {
		n = n.prev
		index++
	}
	return n
}

// Remove unlinks n from l. Every cursor positioned on n is relocated to the
// successor of n before the links are cut. It reports false if n was not a
// member of l.
func (l *List[T]) Remove(n *Node[T]) bool {
	if n.list != l {
		return false
	}

	succ := n.next
	for c := n.marks; c != nil; c = n.marks {
		c.unmark()
		c.node = succ
		c.relocated = true
		if succ != nil {
			c.mark()
		}
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next, n.list = nil, nil, nil
	l.len--
	return true
}

// All yields values from head to tail. Removing the value currently being
// yielded is allowed; any other mutation during the loop is not.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.front; n != nil; {
			next := n.next
			if !yield(n.Value) {
				return
			}
			n = next
		}
	}
}

// Backward yields values from tail to head with the same mutation rules as
// All.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.back; n != nil; {
			prev := n.prev
			if !yield(n.Value) {
				return
			}
			n = prev
		}
	}
}

func (l *List[T]) insertBefore(n, at *Node[T]) {
	if n.list != nil {
		panic("binode: node already linked")
	}
	if at == nil {
		l.linkBack(n)
		return
	}
	n.list = l
	n.next = at
	n.prev = at.prev
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.front = n
	}
	at.prev = n
	l.len++
}

func (l *List[T]) insertAfter(n, at *Node[T]) {
	if n.list != nil {
		panic("binode: node already linked")
	}
	if at == nil {
		if l.front == nil {
			l.linkBack(n)
			return
		}
		l.insertBefore(n, l.front)
		return
	}
	n.list = l
	n.prev = at
	n.next = at.next
	if at.next != nil {
		at.next.prev = n
	} else {
		l.back = n
	}
	at.next = n
	l.len++
}

func (l *List[T]) linkBack(n *Node[T]) {
	n.list = l
	n.prev = l.back
	n.next = nil
	if l.back != nil {
		l.back.next = n
	} else {
		l.front = n
	}
	l.back = n
	l.len++
}
