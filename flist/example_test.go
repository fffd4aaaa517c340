package flist_test

import (
	"fmt"

	"github.com/percona-lab/forward-list/flist"
)

func Example() {
	l := flist.Of(2, 3)
	l.PushFront(1)

	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 2
	// 3
}

func ExampleList_InsertAfter() {
	l := flist.Of("a", "c")

	it := l.InsertAfter(l.Begin(), "b")
	l.InsertAfter(it.Next(), "d")

	for v := range l.All() {
		fmt.Println(v)
	}

	// Output:
	// a
	// b
	// c
	// d
}

func ExampleList_EraseAfter() {
	l := flist.Of(1, 2, 3)

	it := l.EraseAfter(l.Begin())
	fmt.Println(it.Value(), l.Len())

	// Output:
	// 3 2
}

func ExampleList_BeforeBegin() {
	l := flist.New[int]()

	// Build front to back by inserting after the moving tail.
	tail := l.BeforeBegin()
	for _, v := range []int{1, 2, 3} {
		tail = l.InsertAfter(tail, v)
	}

	fmt.Println(collect(l))

	// Output:
	// [1 2 3]
}
