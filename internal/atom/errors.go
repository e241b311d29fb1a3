package atom

import "errors"

// ErrUnknownModel indicates a lookup key that names no model.
var ErrUnknownModel = errors.New("atom: unknown model")
