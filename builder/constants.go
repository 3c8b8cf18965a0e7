// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodDisjointCliques is the canonical name for the DisjointCliques constructor.
	MethodDisjointCliques = "DisjointCliques"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest complete graph with an edge.
// A lone vertex has no edge and therefore no presence in a core.Graph.
const MinCompleteNodes = 2

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinCycleNodes is the smallest ring that needs no loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is a hub plus at least one leaf.
const MinStarNodes = 2

// MinRandomSparseNodes is the smallest vertex count RandomSparse accepts.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the inclusive lower bound for RandomSparse p.
	MinProbability = 0.0
	// MaxProbability is the inclusive upper bound for RandomSparse p.
	MaxProbability = 1.0
)
