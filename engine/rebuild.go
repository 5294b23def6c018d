package engine

// Rebuild discards all incremental bookkeeping and reruns the full
// from-scratch clustering pass over the host graph's current node set.
// Insert and Delete already maintain state incrementally; Rebuild exists
// as an explicit reconciliation point for callers who want the
// rebuild-equivalence guarantee reasserted after a long sequence of
// mutations rather than trusting the incremental bookkeeping to have
// tracked every cascading upgrade/downgrade exactly.
func (e *DenGraphIO) Rebuild() error {
	return e.build()
}
