package floyd_test

import (
	"fmt"

	"github.com/katalvlaran/floydcycle/floyd"
)

// ExampleFloyd finds the loop of a "rho"-shaped list:
//
//	0 → 1 → 2 → 3
//	    ↑       │
//	    └───────┘
func ExampleFloyd() {
	g := floyd.Graph{floyd.Next(1), floyd.Next(2), floyd.Next(3), floyd.Next(1)}

	c, ok := floyd.Floyd(g, 0)
	if !ok {
		fmt.Println("no cycle")
		return
	}
	fmt.Printf("entry=%d mu=%d lambda=%d\n", c.FirstIndex, c.StepsFromStart, c.Length)

	// Output:
	// entry=1 mu=1 lambda=3
}

// ExampleDetectCycles scans a graph with two disconnected parts.
func ExampleDetectCycles() {
	g := floyd.Graph{
		floyd.Out(1), // 0 → 1
		{},           // 1 dead end
		floyd.Out(3), // 2 → 3
		floyd.Out(2), // 3 → 2
	}

	for _, c := range floyd.DetectCycles(g) {
		fmt.Printf("%+v\n", c)
	}

	// Output:
	// {FirstIndex:2 StepsFromStart:0 Length:2}
}

// ExampleNormalizePath declares edges from the receiving side and lets
// DetectCycles invert them.
func ExampleNormalizePath() {
	g := floyd.Graph{
		floyd.Record(map[string][]int{"in": {2}}),
		floyd.Record(map[string][]int{"in": {0}}),
		floyd.Record(map[string][]int{"in": {1}}),
	}

	for i, n := range floyd.NormalizePath(g) {
		fmt.Println(i, "→", n.Field("out"))
	}
	fmt.Println(floyd.DetectCycles(g, floyd.WithNormalizePath(true)))

	// Output:
	// 0 → [1]
	// 1 → [2]
	// 2 → [0]
	// [{0 0 3}]
}
