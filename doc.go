// Package floydcycle finds cycles in indexed graphs with a set-based
// generalization of Floyd's tortoise-and-hare algorithm.
//
// 🚀 What is floydcycle?
//
//	An in-memory toolkit for graphs whose nodes are addressed by index and
//	may have zero, one or many successors:
//		• Single-start search: entry index, tail length (μ), loop length (λ)
//		• Multi-start scan covering disconnected subgraphs
//		• In-edge normalization for graphs declared from the receiving side
//		• JSON codec for number / array / record node shapes
//		• Fixture builders for rings, chains, lassos and random graphs
//		• A caching HTTP service and a CLI on top
//
// Under the hood, everything is organized as:
//
//	floyd/               — node model, frontier stepper, Floyd, DetectCycles, NormalizePath
//	builder/             — deterministic graph constructors for tests and demos
//	internal/cyclecache/ — LRU result cache with SipHash keys and singleflight
//	internal/api/        — chi HTTP endpoints
//	internal/floydcmd/   — star command tree behind cmd/floyd
//
// Quick ASCII example:
//
//	0 → 1 → 2 → 3
//	        ↑   │
//	        └───┘
//
//	from 0: entry 2, μ = 2, λ = 2.
//
//	go install github.com/katalvlaran/floydcycle/cmd/floyd@latest
package floydcycle
