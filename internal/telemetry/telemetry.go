// internal/telemetry/telemetry.go
package telemetry

import (
	"context"

	"go-gamestate/internal/event"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "go-gamestate/internal/state"

// Recorder listens to state transition events and records one span, one
// counter increment and the new stack depth per transition.
type Recorder struct {
	tracer trace.Tracer
	meter  metric.Meter

	transitions metric.Int64Counter
	depth       metric.Int64Histogram
}

var _ event.Listener = (*Recorder)(nil)

// Option configures the Recorder
type Option func(*Recorder)

// WithTracerProvider sets a custom tracer provider
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(r *Recorder) {
		r.tracer = provider.Tracer(instrumentationName)
	}
}

// WithMeterProvider sets a custom meter provider
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Recorder) {
		r.meter = provider.Meter(instrumentationName)
	}
}

// New creates a Recorder. Without options it uses the global providers.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		tracer: otel.Tracer(instrumentationName),
		meter:  otel.Meter(instrumentationName),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.transitions, err = r.meter.Int64Counter(
		"state.transitions",
		metric.WithDescription("Number of performed state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	r.depth, err = r.meter.Int64Histogram(
		"state.stack.depth",
		metric.WithDescription("State stack depth after a transition"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Subscribe attaches the recorder to every transition event of d.
func (r *Recorder) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(r)
}

// OnEvent implements event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	t, ok := event.TransitionOf(e)
	if !ok {
		return
	}

	ctx := context.Background()
	attrs := []attribute.KeyValue{
		attribute.String("state.action", t.Action),
		attribute.String("state.from", t.From),
		attribute.String("state.to", t.To),
	}

	_, span := r.tracer.Start(ctx, "state.transition: "+t.Action,
		trace.WithAttributes(attrs...),
		trace.WithAttributes(attribute.Int("state.depth", t.Depth)),
	)
	span.End()

	r.transitions.Add(ctx, 1, metric.WithAttributes(attrs...))
	r.depth.Record(ctx, int64(t.Depth), metric.WithAttributes(attribute.String("state.to", t.To)))
}
