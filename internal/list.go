package internal

import "errors"

var (
	ErrEmptyList   = errors.New("list is empty")
	ErrForeignNode = errors.New("node does not belong to this list")
)

// Node is a single entry of a List. The list owns it; callers only keep
// the pointer around as a handle for O(1) delete and move operations.
type Node[T any] struct {
	Value T

	prev *Node[T]
	next *Node[T]
	list *List[T]
}

// Next returns the neighbour towards the tail, or nil.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.next
}

// Prev returns the neighbour towards the head, or nil.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.prev
}

// List is a doubly-linked list with O(1) insertion at both ends, removal of
// any node and move-to-end. The cache uses head as the least-recently-used
// end and tail as the most-recently-used end.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Len() int {
	return l.count
}

func (l *List[T]) Head() *Node[T] {
	return l.head
}

func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// AddToHead wraps v in a new node and links it in front of the current head.
func (l *List[T]) AddToHead(v T) *Node[T] {
	n := &Node[T]{Value: v}
	l.linkHead(n)
	return n
}

// AddToTail wraps v in a new node and links it after the current tail.
func (l *List[T]) AddToTail(v T) *Node[T] {
	n := &Node[T]{Value: v}
	l.linkTail(n)
	return n
}

func (l *List[T]) RemoveFromHead() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	l.unlink(n)
	return n.Value, nil
}

func (l *List[T]) RemoveFromTail() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.tail
	l.unlink(n)
	return n.Value, nil
}

// Delete removes n from the list. A deleted node is detached and cannot be
// passed back to any list operation.
func (l *List[T]) Delete(n *Node[T]) error {
	if !l.owns(n) {
		return ErrForeignNode
	}
	l.unlink(n)
	return nil
}

// MoveToHead relinks n as the head. The node keeps its identity, so handles
// held by callers stay valid.
func (l *List[T]) MoveToHead(n *Node[T]) error {
	if !l.owns(n) {
		return ErrForeignNode
	}
	if n == l.head {
		return nil
	}
	l.unlink(n)
	l.linkHead(n)
	return nil
}

// MoveToTail relinks n as the tail. See MoveToHead.
func (l *List[T]) MoveToTail(n *Node[T]) error {
	if !l.owns(n) {
		return ErrForeignNode
	}
	if n == l.tail {
		return nil
	}
	l.unlink(n)
	l.linkTail(n)
	return nil
}

func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}

func (l *List[T]) linkHead(n *Node[T]) {
	n.list = l
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.count++
}

func (l *List[T]) linkTail(n *Node[T]) {
	n.list = l
	n.next = nil
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.count++
}

// unlink fixes up the neighbours (or head/tail) and detaches n.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
	l.count--
}
