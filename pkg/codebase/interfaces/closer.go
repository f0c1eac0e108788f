package interfaces

import "context"

// Closer abstraction for dependency that must be released on shutdown
type Closer interface {
	Disconnect(ctx context.Context) error
}
