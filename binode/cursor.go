package binode

// Cursor references a node of a List and stays valid while that node is
// removed. The zero value references nothing. A Cursor must not be copied
// while it is positioned on a node.
type Cursor[T any] struct {
	node       *Node[T]
	relocated  bool
	prev, next *Cursor[T]
}

// Seek positions c on n, which may be nil, and clears the relocated flag.
func (c *Cursor[T]) Seek(n *Node[T]) *Node[T] {
	c.unmark()
	c.node = n
	c.relocated = false
	if n != nil {
		c.mark()
	}
	return n
}

// Node returns the node c references, nil once the traversal is past the
// tail.
func (c *Cursor[T]) Node() *Node[T] {
	return c.node
}

// Relocated reports whether the node c was positioned on has been removed
// since the last Seek or Advance. When true, Node already returns the
// removed node's successor.
func (c *Cursor[T]) Relocated() bool {
	return c.relocated
}

// Advance steps to the next node. If the previous node was removed the
// cursor already sits on its successor and stays there.
func (c *Cursor[T]) Advance() *Node[T] {
	if c.relocated {
		c.relocated = false
		return c.node
	}
	if c.node == nil {
		return nil
	}
	return c.Seek(c.node.next)
}

// Close detaches c from whatever node it references.
func (c *Cursor[T]) Close() {
	c.unmark()
	c.node = nil
	c.relocated = false
}

func (c *Cursor[T]) mark() {
	n := c.node
	c.next = nil
	c.prev = n.marksTail
	if n.marksTail != nil {
		n.marksTail.next = c
	} else {
		n.marks = c
	}
	n.marksTail = c
}

func (c *Cursor[T]) unmark() {
	n := c.node
	if n == nil {
		return
	}
	if c.prev != nil {
		c.prev.next = c.next
	} else if n.marks == c {
		n.marks = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else if n.marksTail == c {
		n.marksTail = c.prev
	}
	c.prev, c.next = nil, nil
}
