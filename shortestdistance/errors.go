package shortestdistance

import "errors"

// ErrSemiringUnsupported is returned when the chosen queue discipline's
// assumptions are violated by the semiring in use — e.g. ShortestFirst
// requested over a weight whose Properties lack the Path bit.
var ErrSemiringUnsupported = errors.New("shortestdistance: semiring incompatible with queue discipline")
