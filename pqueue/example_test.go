package pqueue_test

import (
	"fmt"
	"strconv"

	"github.com/fixedcap/collections/compare"
	"github.com/fixedcap/collections/pqueue"
)

func ExampleQueue() {
	queue, err := pqueue.New[int](3, compare.Natural[int]())
	if err != nil {
		panic(err)
	}

	for _, v := range []int{5, 1, 3} {
		if err := queue.Insert(v); err != nil {
			panic(err)
		}
	}

	rendered, err := queue.Render(func(payload int) string { return strconv.Itoa(payload) })
	if err != nil {
		panic(err)
	}

	fmt.Println(rendered)

	for !queue.IsEmpty() {
		payload, err := queue.Remove()
		if err != nil {
			panic(err)
		}

		fmt.Println(payload)
	}

	// Output:
	// 1 3 5
	// 1
	// 3
	// 5
}
