package queries

import "errors"

// ErrNotFound marks an identifier that resolves to no stored record. Callers
// check with errors.Is and render a not-found state instead of a failure.
// Every other error out of this package means the data store could not
// produce a complete result.
var ErrNotFound = errors.New("requested record does not exist")
