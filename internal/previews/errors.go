package previews

import "orca-backend/internal/snapshots"

// ErrNotFound is re-exported so handlers can branch without importing the
// snapshot package directly.
var ErrNotFound = snapshots.ErrNotFound
