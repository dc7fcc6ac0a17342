package ungraph_test

import (
	"fmt"

	"github.com/juliuskoskela/gdsl/ungraph"
)

// ExampleNode_Iter reads the first adjacent triple.
func ExampleNode_Iter() {
	a := ungraph.New[string, struct{}, float64]("a", struct{}{})
	b := ungraph.New[string, struct{}, float64]("b", struct{}{})

	a.Connect(b, 0.42)

	e := a.Iter()[0]
	fmt.Println(e.Source.Key(), e.Target.Key(), e.Value)
	// Output:
	// a b 0.42
}

// ExampleNode_Bfs finds the hop count across a small mesh.
func ExampleNode_Bfs() {
	n1 := ungraph.New[int, struct{}, struct{}](1, struct{}{})
	n2 := ungraph.New[int, struct{}, struct{}](2, struct{}{})
	n3 := ungraph.New[int, struct{}, struct{}](3, struct{}{})
	n4 := ungraph.New[int, struct{}, struct{}](4, struct{}{})

	n1.Connect(n2, struct{}{})
	n2.Connect(n3, struct{}{})
	n3.Connect(n4, struct{}{})
	n4.Connect(n1, struct{}{})

	path, _ := n1.Bfs().Target(3).SearchPath()
	fmt.Println(path.Len(), "hops")
	// Output:
	// 2 hops
}
