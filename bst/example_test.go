package bst_test

import (
	"fmt"

	"github.com/katalvlaran/algotrace/bst"
)

func ExampleTree_Delete() {
	tree := bst.New()
	for _, v := range []int{50, 30, 70, 60, 80} {
		tree.Insert(v)
	}
	ok, trace := tree.Delete(50)
	fmt.Println(ok, tree.InOrder())
	fmt.Println(trace[3].Text())
	// Output:
	// true [30 60 70 80]
	// Node 50 has two children, finding successor
}
