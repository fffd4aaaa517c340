// Package flist provides a generic singly linked list with constant
// time insertion and removal at the front and after any known
// position.
//
// The list keeps a permanent before-first node embedded in the
// container, so front insertion and removal go through the same
// InsertAfter/EraseAfter path as interior positions. Positions are
// held as lightweight Iterator and ConstIterator handles; a handle
// stays usable across mutations elsewhere in the list.
package flist

import (
	"iter"
	"slices"
)

// List is a singly linked, forward-iterable list. The zero value is
// an empty list ready to use.
//
// The before-first node is embedded in the struct, so a plain
// assignment of a List value aliases the chain. Use Clone or Assign
// to copy a list.
type List[T any] struct {
	head node[T] // before-first node, holds no element
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.fill(slices.Values(values))

	return l
}

// FromSeq returns a list holding the values produced by seq in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.fill(seq)

	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// Front returns the first element. It panics if the list is empty.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		panic("flist: Front on empty list")
	}

	return l.head.next.value
}

// PopFront removes and returns the first element. It panics if the
// list is empty.
func (l *List[T]) PopFront() T {
	first := l.head.next
	if first == nil {
		panic("flist: PopFront on empty list")
	}

	l.head.next = first.next
	first.next = nil
	l.size--

	return first.value
}

// InsertAfter inserts value after pos and returns the position of the
// new element. pos must belong to this list; inserting after the end
// position panics. The new node is fully built before any link is
// touched, so a failure during construction leaves the list unchanged.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	if pos.n == nil {
		panic("flist: InsertAfter on end position")
	}

	n := &node[T]{value: value, next: pos.n.next}
	pos.n.next = n
	l.size++

	return Iterator[T]{n}
}

// EraseAfter removes the element following pos and returns the
// position of the element after the removed one, or the end position
// if none remains. pos must have a successor.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil || pos.n.next == nil {
		panic("flist: EraseAfter on position with no successor")
	}

	removed := pos.n.next
	pos.n.next = removed.next
	removed.next = nil
	l.size--

	return Iterator[T]{pos.n.next}
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other in constant time.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Clone returns a deep copy of the list preserving element order. The
// copy shares no nodes with the original.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.fill(l.All())

	return c
}

// CloneFunc is like Clone but copies each element with copyFn, for
// element types that themselves hold shared state. If copyFn panics,
// no partially built list is observable.
func (l *List[T]) CloneFunc(copyFn func(T) T) *List[T] {
	c := New[T]()
	c.fill(func(yield func(T) bool) {
		for v := range l.All() {
			if !yield(copyFn(v)) {
				return
			}
		}
	})

	return c
}

// Assign replaces the contents of l with a deep copy of other.
// Assigning a list to itself leaves it unchanged. The copy is built
// detached and swapped in whole, so a failure while copying leaves l
// in its previous state.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}

	tmp := other.Clone()
	l.Swap(tmp)
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Begin returns the position of the first element, equal to End for
// an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.head.next}
}

// End returns the off-chain end position. It is never dereferenceable.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position before the first element. It
// anchors InsertAfter and EraseAfter at the front of the list and is
// not dereferenceable.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{&l.head}
}

// CBegin returns the read-only position of the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{l.head.next}
}

// CEnd returns the read-only end position.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin returns the read-only position before the first element.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{&l.head}
}

// fill links every value of seq into l, preserving order. l must be
// empty. The chain is built in a detached list and swapped in whole,
// so a failure mid-sequence leaves l empty.
func (l *List[T]) fill(seq iter.Seq[T]) {
	if !l.IsEmpty() {
		panic("flist: fill on non-empty list")
	}

	tmp := List[T]{}
	tail := tmp.BeforeBegin()
	for v := range seq {
		tail = tmp.InsertAfter(tail, v)
	}

	l.Swap(&tmp)
}
