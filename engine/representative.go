package engine

import "github.com/dengraph-go/dengraph/graph"

// layeredMean is a persistent layered map supporting shadowed writes and
// whiteout deletes without mutating its parent layer. DenGraphFIO chains
// one of these per cluster so that representative updates never touch
// (or invalidate) a sibling cluster's state.
type layeredMean struct {
	parent     *layeredMean
	overrides  map[graph.Node]float64
	tombstones map[graph.Node]struct{}
}

// newLayeredMean builds a root layer with no parent.
func newLayeredMean() *layeredMean {
	return &layeredMean{
		overrides:  make(map[graph.Node]float64),
		tombstones: make(map[graph.Node]struct{}),
	}
}

// child returns a new layer shadowing m: writes to the child never mutate m.
func (m *layeredMean) child() *layeredMean {
	return &layeredMean{
		parent:     m,
		overrides:  make(map[graph.Node]float64),
		tombstones: make(map[graph.Node]struct{}),
	}
}

// Get returns the value visible for key through this layer, walking up to
// parent layers until a write or a whiteout is found.
func (m *layeredMean) Get(key graph.Node) (float64, bool) {
	if _, dead := m.tombstones[key]; dead {
		return 0, false
	}
	if v, ok := m.overrides[key]; ok {
		return v, true
	}
	if m.parent != nil {
		return m.parent.Get(key)
	}

	return 0, false
}

// Set writes key=value at this layer and clears any local whiteout for key.
func (m *layeredMean) Set(key graph.Node, value float64) {
	m.overrides[key] = value
	delete(m.tombstones, key)
}

// Delete shadows key with a whiteout at this layer, regardless of whether
// an ancestor layer still defines it.
func (m *layeredMean) Delete(key graph.Node) {
	delete(m.overrides, key)
	m.tombstones[key] = struct{}{}
}

// Keys returns every key visible through this layer (overrides first, then
// parent keys not locally overridden or whited out), deduplicated.
func (m *layeredMean) Keys() []graph.Node {
	seen := make(map[graph.Node]struct{})
	var out []graph.Node
	for k := range m.overrides {
		if _, dead := m.tombstones[k]; dead {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	if m.parent != nil {
		for _, k := range m.parent.Keys() {
			if _, dup := seen[k]; dup {
				continue
			}
			if _, dead := m.tombstones[k]; dead {
				continue
			}
			out = append(out, k)
		}
	}

	return out
}

// Len reports the number of distinct visible keys.
func (m *layeredMean) Len() int {
	return len(m.Keys())
}
