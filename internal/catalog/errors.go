package catalog

import "errors"

// ErrMalformedDocument indicates a configuration document that does not
// have the expected movies shape. The service treats it like a fetch failure.
var ErrMalformedDocument = errors.New("malformed configuration document")
