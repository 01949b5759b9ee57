package telemetry

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.OperationListener = (*NoopListener)(nil)

// NoopListener discards all operation notifications.
type NoopListener struct{}

// NewNoopListener creates a new NoopListener.
func NewNoopListener() *NoopListener {
	return &NoopListener{}
}

// Started does nothing.
func (l *NoopListener) Started(_ domain.OperationDescriptor) {}

// Finished does nothing.
func (l *NoopListener) Finished(_ domain.OperationDescriptor, _ any, _ error) {}
