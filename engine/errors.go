package engine

import "errors"

// ErrInvalidParameters is returned by NewDenGraphIO when cluster_distance is
// not strictly positive or core_neighbours is less than 1.
var ErrInvalidParameters = errors.New("engine: cluster_distance must be > 0 and core_neighbours must be >= 1")
