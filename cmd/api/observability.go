package main

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// logSpanProcessor prints every finished span as one access-log style line.
type logSpanProcessor struct{}

func (logSpanProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (logSpanProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	attrs := make([]string, 0, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}
	log.Printf("span name=%s trace_id=%s status=%s duration_ms=%d attrs=%v",
		s.Name(),
		s.SpanContext().TraceID(),
		s.Status().Code,
		s.EndTime().Sub(s.StartTime()).Milliseconds(),
		attrs,
	)
}

func (logSpanProcessor) Shutdown(context.Context) error   { return nil }
func (logSpanProcessor) ForceFlush(context.Context) error { return nil }

// setupTracing installs the global tracer provider. Spans are only written
// when logSpans is set.
func setupTracing(logSpans bool) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String("bookshop"),
		),
	)
	if err != nil {
		return nil, err
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if logSpans {
		opts = append(opts, sdktrace.WithSpanProcessor(logSpanProcessor{}))
	}
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp, nil
}
