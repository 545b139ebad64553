package floyd

import (
	"errors"

	"golang.org/x/exp/maps"
)

var (
	// ErrIndexOutOfRange indicates a successor, predecessor, start or
	// excluded index that does not address a node of the graph.
	ErrIndexOutOfRange = errors.New("floyd: index out of range")

	// ErrInvalidNode indicates a decoded node value that is none of
	// number, array of numbers, object of arrays, or null.
	ErrInvalidNode = errors.New("floyd: invalid node")

	// ErrEmptyGraph indicates DecodeGraph received no data.
	ErrEmptyGraph = errors.New("floyd: empty graph input")
)

// Kind tags the shape of a Node.
type Kind uint8

const (
	KindRecord Kind = iota // KindRecord: named edge lists ("out", "in", ...).
	KindNext               // KindNext: exactly one successor index.
	KindList               // KindList: the node is its own successor list.
)

// String returns a short name for k.
func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Node is one element of a Graph.
//
// The zero Node is an empty record: it has no successors under any field name.
type Node struct {
	kind   Kind
	next   int
	list   []int
	fields map[string][]int
}

// Next returns a node whose single successor is i.
func Next(i int) Node {
	return Node{kind: KindNext, next: i}
}

// List returns a node whose successors are idx, in the given order.
func List(idx ...int) Node {
	if idx == nil {
		idx = []int{}
	}

	return Node{kind: KindList, list: idx}
}

// Record returns a record node over fields. The map is not copied; callers
// that keep mutating it after the call share that state with the graph.
func Record(fields map[string][]int) Node {
	return Node{kind: KindRecord, fields: fields}
}

// Out is shorthand for a record node with only the default out-edge field.
func Out(idx ...int) Node {
	return Record(map[string][]int{DefaultOutEdgeField: idx})
}

// Kind reports the shape of n.
func (n Node) Kind() Kind { return n.kind }

// Field returns the index list stored under name, or nil when n is not a
// record or the field is absent.
func (n Node) Field(name string) []int {
	if n.kind != KindRecord {
		return nil
	}

	return n.fields[name]
}

// HasField reports whether n is a record carrying a field called name.
func (n Node) HasField(name string) bool {
	if n.kind != KindRecord {
		return false
	}
	_, ok := n.fields[name]

	return ok
}

// Fields returns a shallow copy of the record's field map, or nil for
// non-record nodes.
func (n Node) Fields() map[string][]int {
	if n.kind != KindRecord || n.fields == nil {
		return nil
	}

	return maps.Clone(n.fields)
}

// Successors resolves the successor indices of n.
// It is the single dispatch point over the node shapes:
//
//	KindNext   → {next}
//	KindList   → the list verbatim
//	KindRecord → the outField list, or empty when absent
//
// The returned slice must not be modified.
func (n Node) Successors(outField string) []int {
	switch n.kind {
	case KindNext:
		return []int{n.next}
	case KindList:
		return n.list
	default:
		return n.fields[outField]
	}
}

// Graph is an ordered sequence of nodes; a node's index is its identity.
type Graph []Node

// Len returns the number of nodes in g.
func (g Graph) Len() int { return len(g) }

// Cycle describes a cycle reachable from a start index.
type Cycle struct {
	// FirstIndex is the entry node of the cycle.
	FirstIndex int `json:"firstIndex"`

	// StepsFromStart is μ, the number of steps from the start to FirstIndex.
	StepsFromStart int `json:"stepsFromStart"`

	// Length is λ, the number of steps around the cycle back to FirstIndex.
	Length int `json:"length"`
}
