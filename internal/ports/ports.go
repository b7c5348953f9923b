package ports

import (
	"context"
	"taskloop/internal/domain"
)

// Invoker starts the external task as a child process and blocks until it
// exits. A non-zero exit code is not an error; the returned error is non-nil
// only when the child could not be started at all or the context was
// cancelled while it ran.
type Invoker interface {
	Invoke(ctx context.Context) (domain.Run, error)
}

// Journal keeps the recent run records for this process lifetime.
type Journal interface {
	Record(r domain.Run)
	Last() (domain.Run, bool)
	Cycles() uint64
	Recent(n int) []domain.Run
}
