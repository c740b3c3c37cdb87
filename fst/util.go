package fst

// ArcList drains it into a slice and closes it. Convenience for callers
// that want random access rather than streaming iteration.
func ArcList(it ArcIterator) []Arc {
	defer it.Close()
	var arcs []Arc
	for it.Next() {
		arcs = append(arcs, it.Arc())
	}
	return arcs
}

// Arcs is a convenience wrapper: f.Arcs(s) drained to a slice.
func Arcs(f Fst, s StateId) []Arc {
	return ArcList(f.Arcs(s))
}
