package graph

import "fmt"

// fmtLess is the last-resort tie-break for lessNode when a Node's dynamic
// type isn't one of the common scalar kinds: stable but arbitrary, used
// only to pick a canonical cache key, never for clustering semantics.
func fmtLess(a, b Node) bool {
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}
