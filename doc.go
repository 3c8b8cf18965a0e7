// Package lvclique finds the large maximal cliques of an undirected graph
// and analyses who the members are.
//
// What is inside
//
//	• Core primitives: a thread-safe undirected Graph and its read-only Snapshot
//	• Clique search: pivoted Bron–Kerbosch with an inclusive size threshold
//	• Traversal: BFS and connected components
//	• Builders: complete, path, cycle, star, random and disjoint-clique graphs
//	• Adapters: CSV ingestion, per-clique viewership statistics, PNG charts
//	• Runs: a staged pipeline with zap logging, Prometheus metrics,
//	  OpenTelemetry spans and a SQLite or Badger run store
//
// Layout
//
//	core/          — Graph, Edge, VertexSet, Snapshot
//	clique/        — BronKerbosch, Search, Verify, DegeneracyOrder
//	bfs/           — BFS, Components
//	builder/       — deterministic graph constructors for tests and benchmarks
//	ingest/        — edge-list and target CSV readers, edge-list writer
//	stats/         — Join, ViewershipDistribution, Summarize
//	render/        — paged bar-chart grids
//	store/         — persisted runs
//	config/        — TOML/YAML configuration
//	observability/ — metrics registry and tracer setup
//	pipeline/      — the end-to-end run
//	cmd/lvclique/  — the command-line tool
//
// Quick example
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	has maximal cliques {0,1,2} and {0,2,3}; with a threshold of 3 both are
//	reported, with a threshold of 4 neither is.
//
//	go install github.com/katalvlaran/lvclique/cmd/lvclique@latest
package lvclique
