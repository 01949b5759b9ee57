package ports

import "go.trai.ch/forge/internal/core/domain"

// OperationListener is the sole observability surface for build operations.
// Every operation, nested or not, is reported started and finished exactly
// once, with its descriptor carrying the parent linkage.
//
//go:generate go run go.uber.org/mock/mockgen -source=operations.go -destination=mocks/mock_operations.go -package=mocks
type OperationListener interface {
	Started(desc domain.OperationDescriptor)

	// Finished carries the operation's result payload (may be nil) and its
	// failure (nil on success).
	Finished(desc domain.OperationDescriptor, result any, failure error)
}
