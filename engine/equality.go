package engine

// Equal reports whether e and other have the same parameters, the same
// noise set, and a bijection between their cluster lists under which
// corresponding clusters have equal core/border sets. Cluster list order
// and object identity are irrelevant — only the bijection needs to exist,
// so reordering never changes engine equality.
func (e *DenGraphIO) Equal(other *DenGraphIO) bool {
	if other == nil {
		return false
	}
	if e.epsilon != other.epsilon || e.eta != other.eta {
		return false
	}
	if !nodeSetEqual(e.noise, other.noise) {
		return false
	}
	if len(e.clusters) != len(other.clusters) {
		return false
	}

	used := make([]bool, len(other.clusters))
	for _, c := range e.clusters {
		matched := false
		for i, oc := range other.clusters {
			if used[i] {
				continue
			}
			if c.Equal(oc) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func nodeSetEqual(a, b map[interface{}]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}
