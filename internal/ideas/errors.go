package ideas

import "errors"

// ErrNotFound reports that no idea exists for the requested id. Lookups return
// it directly so callers can tell a missing row from a storage failure.
var ErrNotFound = errors.New("idea not found")
