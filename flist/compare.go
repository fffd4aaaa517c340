package flist

import "cmp"

// Equal reports whether a and b have the same length and equal
// elements at every position.
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if an.value != bn.value {
			return false
		}
		bn = bn.next
	}

	return true
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.size != b.size {
		return false
	}

	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if !eq(an.value, bn.value) {
			return false
		}
		bn = bn.next
	}

	return true
}

// Compare compares a and b lexicographically, element by element. The
// result is 0 if the lists are equal, -1 if a is less, and +1 if a is
// greater. A list that is a strict prefix of the other is less.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but compares element pairs with cmp,
// which must return a negative, zero, or positive number analogously
// to [cmp.Compare].
func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], cmp func(T1, T2) int) int {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if c := cmp(an.value, bn.value); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}

	switch {
	case an != nil:
		return +1
	case bn != nil:
		return -1
	}

	return 0
}

// Less reports whether a is lexicographically less than b.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
