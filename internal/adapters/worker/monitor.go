package worker

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// DefaultMaxHeapBytes is the heap size past which an idle worker is evicted
// rather than reused.
const DefaultMaxHeapBytes = 1 << 30

var _ ports.MemoryMonitor = (*HeapThresholdMonitor)(nil)

// HeapThresholdMonitor evicts workers whose reported heap exceeds a fixed
// threshold. A zero threshold disables eviction.
type HeapThresholdMonitor struct {
	maxHeapBytes uint64
}

// NewHeapThresholdMonitor creates a monitor with the given heap threshold.
func NewHeapThresholdMonitor(maxHeapBytes uint64) *HeapThresholdMonitor {
	return &HeapThresholdMonitor{maxHeapBytes: maxHeapBytes}
}

// ShouldEvict reports whether the worker's heap disqualifies it from reuse.
func (m *HeapThresholdMonitor) ShouldEvict(status domain.MemoryStatus) bool {
	return m.maxHeapBytes > 0 && status.HeapBytes > m.maxHeapBytes
}
