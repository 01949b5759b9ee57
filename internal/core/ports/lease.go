// Package ports defines the core interfaces for the application.
package ports

import "context"

// Lease is one permit from the global worker lease registry. Leases form a
// parent/child tree matching call nesting; every lease, child or top-level,
// consumes one permit from the same global pool.
//
//go:generate go run go.uber.org/mock/mockgen -source=lease.go -destination=mocks/mock_lease.go -package=mocks
type Lease interface {
	// StartChild acquires a child lease from the global pool, blocking until
	// a permit is free. It fails if this lease has already been finished.
	StartChild(ctx context.Context) (Lease, error)

	// Finish releases the lease's permit exactly once. Finishing a lease
	// that still has unfinished children is a usage error; the permit stays
	// held and the caller must finish the children first.
	Finish() error
}
