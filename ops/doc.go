// Package ops collects the lighter-weight transducer helpers:
// concatenation, topological sort, strongly connected components,
// connect, prune, and isomorphism testing. rmepsilon builds on the
// connect and prune helpers here; reachability does not use this
// package, and neither does synchronize, since it is exclusively lazy.
package ops
