package table

import "github.com/go-faster/errors"

// ErrOutOfBounds reports a cell index outside [0, Size). The failing
// operation leaves the table unmodified and releases any lock it took.
var ErrOutOfBounds = errors.New("cell index out of bounds")
