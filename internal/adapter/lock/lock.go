// Package lock provides the per-topic generation lock. A held lock fails
// fast with domain.ErrConflict instead of waiting.
package lock

import "context"

// Release frees a lock. It is a no-op once the lock expired and was taken
// by someone else.
type Release func(ctx context.Context) error
