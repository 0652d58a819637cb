package port

import "errors"

// Sentinel errors used across ports. Adapters wrap their failures with one
// of these so the HTTP boundary can map them without knowing the backend.
var (
	ErrEmptyQuery      = errors.New("query is empty")
	ErrStoreFailure    = errors.New("product store failure")
	ErrProviderFailure = errors.New("ai provider failure")
)
