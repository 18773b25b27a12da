package queue_test

import (
	"fmt"

	"github.com/ElectrifyPro/queue"
)

func ExampleQueue() {
	q := queue.New[string](2)

	fmt.Println(q.Push("first"))
	fmt.Println(q.Push("second"))
	fmt.Println(q.Push("overflow"))

	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// true
	// true
	// false
	// first
	// second
}

func ExampleNewWithRelease() {
	q := queue.NewWithRelease(4, func(v string) {
		fmt.Println("released", v)
	})

	q.Push("a")
	q.Push("b")
	q.Clear()
	// Output:
	// released a
	// released b
}
