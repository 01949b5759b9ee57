package telemetry

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.OperationListener = (*MultiListener)(nil)

// MultiListener fans operation notifications out to several listeners in
// registration order.
type MultiListener struct {
	listeners []ports.OperationListener
}

// NewMultiListener creates a listener broadcasting to all given listeners.
func NewMultiListener(listeners ...ports.OperationListener) *MultiListener {
	return &MultiListener{listeners: listeners}
}

// Started notifies every listener.
func (l *MultiListener) Started(desc domain.OperationDescriptor) {
	for _, listener := range l.listeners {
		listener.Started(desc)
	}
}

// Finished notifies every listener.
func (l *MultiListener) Finished(desc domain.OperationDescriptor, result any, failure error) {
	for _, listener := range l.listeners {
		listener.Finished(desc, result, failure)
	}
}
