package graph

import "errors"

// Sentinel errors for graph mutation and lookup.
var (
	// ErrEdgeExists is returned by AddEdge when the requested edge is already present.
	ErrEdgeExists = errors.New("graph: edge exists")

	// ErrEdgeDoesNotExist is returned by RemoveEdge when the requested edge is absent.
	ErrEdgeDoesNotExist = errors.New("graph: edge does not exist")

	// ErrIndexOutOfRange is returned when a vertex index is not in [0, vertex_count).
	ErrIndexOutOfRange = errors.New("graph: index out of range")

	// ErrSelfLoop is returned by AddEdge when index1 == index2; self-loops
	// are excluded by invariant (I2), not a configurable option.
	ErrSelfLoop = errors.New("graph: self-loops not allowed")

	// ErrEmptyNodeList is returned by ClonedSubgraph when given no indices, or when
	// the largest requested index is out of range.
	ErrEmptyNodeList = errors.New("graph: empty or invalid node list")
)
