package list_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Erik-Movsesyan/Singly-Linked-List/list"
)

func ExampleList() {
	l := list.NewList[string]()
	l.AddLast("b")
	l.AddFirst("a")
	tail := l.AddLast("d")
	if _, err := l.AddBefore(tail, "c"); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(slices.Collect(l.All()))
	fmt.Println(l, l.Len())
	// Output:
	// [a b c d]
	// [a, b, c, d] 4
}

func ExampleNewListFromFunc() {
	l, err := list.NewListFromFunc(slices.Values([]string{"Go", "Rust"}), strings.EqualFold)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Contains("GO"), l.Remove("rust"), l)
	// Output:
	// true true [Go]
}

func ExampleList_RemoveFirst() {
	l := list.NewList[int]()
	l.AddLast(1)

	value, err := l.RemoveFirst()
	fmt.Println(value, err)

	_, err = l.RemoveFirst()
	fmt.Println(errors.Is(err, list.ErrInvalidOperation))
	// Output:
	// 1 <nil>
	// true
}

func ExampleIterator() {
	l, _ := list.NewListFrom(slices.Values([]int{10, 20}))
	it := l.Iterator()
	for it.Next() {
		value, _ := it.Value()
		fmt.Println(it.Index(), value)
	}
	// Output:
	// 1 10
	// 2 20
}
