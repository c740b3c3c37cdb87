// Package rmepsilon removes epsilon (ε/ε) arcs from a transducer,
// replacing every ε-path between two non-epsilon hops with a direct
// arc carrying the ⊕-combined weight of every path it stands in for
// it stands in for. Both an eager (VectorFst-producing) and a lazy
// (delay.Expander-backed) variant are provided; the per-state
// computation — a shortest-distance closure over the ε-subgraph
// followed by a duplicate-arc merge — is shared between them.
package rmepsilon
