package snapshots

import "errors"

// ErrNotFound indicates the requested object could not be resolved.
var ErrNotFound = errors.New("not found")
