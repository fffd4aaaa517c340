package flist

// Position is the forward traversal contract shared by Iterator and
// ConstIterator: a handle on a single list node that reports whether
// it is dereferenceable and yields the referenced element.
type Position[T any] interface {
	Valid() bool
	Value() T
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// Iterator is a position handle that permits mutation of the
// referenced element. The zero Iterator is the end position. Two
// Iterators compare equal with == when they reference the same node.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node. The end
// position is not valid; the before-begin position is valid for
// advancing but must not be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the position of the following element. Advancing the
// end position panics.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic("flist: Next on end position")
	}

	return Iterator[T]{it.n.next}
}

// Value returns the referenced element. Dereferencing the end
// position panics.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic("flist: Value on end position")
	}

	return it.n.value
}

// Ptr returns a pointer to the referenced element, valid until the
// element is erased.
func (it Iterator[T]) Ptr() *T {
	if it.n == nil {
		panic("flist: Ptr on end position")
	}

	return &it.n.value
}

// Set replaces the referenced element with value.
func (it Iterator[T]) Set(value T) {
	if it.n == nil {
		panic("flist: Set on end position")
	}

	it.n.value = value
}

// Const returns the read-only handle referencing the same node. The
// two compare equal through Const; there is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.n}
}

// ConstIterator is a position handle that permits only read access to
// the referenced element. The zero ConstIterator is the end position.
type ConstIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the position of the following element.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		panic("flist: Next on end position")
	}

	return ConstIterator[T]{it.n.next}
}

// Value returns the referenced element.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panic("flist: Value on end position")
	}

	return it.n.value
}
