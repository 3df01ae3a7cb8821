package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is a started span plus the helpers handlers, services and repositories use on it.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	var attr attribute.KeyValue

	switch val := value.(type) {
	case bool:
		attr = attribute.Bool(key, val)
	case string:
		attr = attribute.String(key, val)
	case int:
		attr = attribute.Int(key, val)
	case int64:
		attr = attribute.Int64(key, val)
	case float64:
		attr = attribute.Float64(key, val)
	case []string:
		attr = attribute.StringSlice(key, val)
	default:
		attr = attribute.String(key, fmt.Sprintf("%v", val))
	}

	s.span.SetAttributes(attr)
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
