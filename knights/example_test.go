package knights_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/bfs"
	"github.com/katalvlaran/statespace/knights"
	"github.com/katalvlaran/statespace/space"
)

// ExampleState_Successors lists the two jumps available from a corner.
func ExampleState_Successors() {
	s := knights.MustNew(knights.Location{Row: 0, Col: 0})
	for _, tr := range s.Successors() {
		fmt.Println(tr.Action)
	}
	// Output:
	// (0,0)->(1,2)
	// (0,0)->(2,1)
}

// ExampleParse reads a board drawn with K and '.'.
func ExampleParse() {
	s, err := knights.Parse(`
		........
		..K.....
		........
		....K...
		........
		........
		........
		........`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Occupied())
	// Output:
	// [(1,2) (3,4)]
}

// ExampleState_search moves a single knight to an adjacent jump square.
func ExampleState_search() {
	start := knights.MustNew(knights.Location{Row: 4, Col: 4})
	target := knights.MustNew(knights.Location{Row: 3, Col: 6})

	res, err := bfs.Search(start, space.EqualTo(target))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Policy)
	// Output:
	// found (4,4)->(3,6)
}
