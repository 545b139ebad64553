package floyd

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes n in its natural shape: a number, an array of
// numbers, or an object of arrays.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case KindNext:
		return json.Marshal(n.next)
	case KindList:
		if n.list == nil {
			return []byte("[]"), nil
		}

		return json.Marshal(n.list)
	default:
		if n.fields == nil {
			return []byte("{}"), nil
		}

		return json.Marshal(n.fields)
	}
}

// UnmarshalJSON decodes a number into a Next node, an array into a List
// node, and an object into a Record node whose values must all be arrays of
// integers. null decodes to an empty record. Anything else is ErrInvalidNode.
func (n *Node) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidNode
	}

	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return ErrInvalidNode
		}
		*n = Record(map[string][]int{})
	case '[':
		var list []int
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNode, err)
		}
		*n = List(list...)
	case '{':
		var fields map[string][]int
		if err := json.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNode, err)
		}
		*n = Record(fields)
	default:
		var next int
		if err := json.Unmarshal(data, &next); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidNode, err)
		}
		*n = Next(next)
	}

	return nil
}

// DecodeGraph parses either an indexed graph (a JSON array of nodes) or a
// keyed graph (a JSON object mapping labels to arrays of labels).
// For keyed input the node labels are returned in index order; for indexed
// input labels is nil.
func DecodeGraph(data []byte) (Graph, []string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil, ErrEmptyGraph
	}

	if data[0] == '{' {
		var adj map[string][]string
		if err := json.Unmarshal(data, &adj); err != nil {
			return nil, nil, fmt.Errorf("floyd: DecodeGraph: keyed graph: %w", err)
		}
		g, labels := FromKeyed(adj)

		return g, labels, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("floyd: DecodeGraph: %w", err)
	}
	g := make(Graph, len(raw))
	for i, r := range raw {
		if err := g[i].UnmarshalJSON(r); err != nil {
			return nil, nil, fmt.Errorf("floyd: DecodeGraph: node %d: %w", i, err)
		}
	}

	return g, nil, nil
}
