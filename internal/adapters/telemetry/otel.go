// Package telemetry mirrors build operations onto observability backends.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.OperationListener = (*SpanSink)(nil)

// SpanSink maps build operations onto OpenTelemetry spans. Operation
// parenthood becomes span parenthood, so a trace viewer shows the same tree
// the build produced.
type SpanSink struct {
	tracer trace.Tracer

	mu    sync.Mutex
	spans map[domain.OperationID]spanEntry
}

type spanEntry struct {
	ctx  context.Context
	span trace.Span
}

// NewSpanSink creates a sink creating spans under the given instrumentation
// name.
func NewSpanSink(name string) *SpanSink {
	return &SpanSink{
		tracer: otel.Tracer(name),
		spans:  make(map[domain.OperationID]spanEntry),
	}
}

// Started opens a span for the operation, parented under the span of its
// parent operation if one is live.
func (s *SpanSink) Started(desc domain.OperationDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentCtx := context.Background()
	if entry, ok := s.spans[desc.ParentID]; ok {
		parentCtx = entry.ctx
	}

	ctx, span := s.tracer.Start(parentCtx, desc.DisplayName)
	span.SetAttributes(detailAttributes(desc.Details)...)
	s.spans[desc.ID] = spanEntry{ctx: ctx, span: span}
}

// Finished ends the operation's span, recording the failure if it had one.
func (s *SpanSink) Finished(desc domain.OperationDescriptor, result any, failure error) {
	s.mu.Lock()
	entry, ok := s.spans[desc.ID]
	delete(s.spans, desc.ID)
	s.mu.Unlock()
	if !ok {
		return
	}

	entry.span.SetAttributes(resultAttributes(result)...)
	if failure != nil {
		entry.span.RecordError(failure)
		entry.span.SetStatus(codes.Error, failure.Error())
	}
	entry.span.End()
}

func detailAttributes(details any) []attribute.KeyValue {
	switch d := details.(type) {
	case domain.TaskOperationDetails:
		return []attribute.KeyValue{attribute.String("task.path", d.TaskPath)}
	case domain.CalculateTaskGraphDetails:
		return []attribute.KeyValue{
			attribute.StringSlice("taskgraph.requests", d.TaskRequests),
			attribute.StringSlice("taskgraph.excluded", d.ExcludedTaskNames),
		}
	default:
		return nil
	}
}

func resultAttributes(result any) []attribute.KeyValue {
	if r, ok := result.(domain.CalculateTaskGraphResult); ok {
		return []attribute.KeyValue{
			attribute.StringSlice("taskgraph.requested_paths", r.RequestedTaskPaths),
			attribute.StringSlice("taskgraph.filtered_paths", r.FilteredTaskPaths),
		}
	}
	return nil
}
