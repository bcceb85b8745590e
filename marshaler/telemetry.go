package marshaler

import (
	"context"
	"fmt"

	"github.com/dogmatiq/enumkit/internal/telemetry"
	"github.com/dogmatiq/enumkit/internal/x/xtelemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// WithTelemetry returns a [Marshaler] that adds telemetry to m.
//
// Marshaling has no context of its own, so spans are recorded as roots.
func WithTelemetry[T any](
	m Marshaler[T],
	p trace.TracerProvider,
	mp metric.MeterProvider,
	l log.LoggerProvider,
) Marshaler[T] {
	provider := telemetry.Provider{
		TracerProvider: p,
		MeterProvider:  mp,
		LoggerProvider: l,
	}

	telem := provider.Recorder(
		"github.com/dogmatiq/enumkit/marshaler",
		telemetry.Type("marshaler.value_type", *new(T)),
		telemetry.Type("marshaler.implementation", m),
		telemetry.String("marshaler.handle", xtelemetry.HandleID()),
	)

	return &instrumentedMarshaler[T]{
		Next:      m,
		Telemetry: telem,
		DataIO:    telem.Counter("data.io", "By", "The cumulative size of the data that has been marshaled or unmarshaled."),
		DataSize:  telem.Histogram("data.size", "By", "The sizes of the data that has been marshaled or unmarshaled."),
	}
}

// instrumentedMarshaler is a decorator that adds instrumentation to a
// [Marshaler].
type instrumentedMarshaler[T any] struct {
	Next      Marshaler[T]
	Telemetry *telemetry.Recorder

	DataIO   telemetry.Instrument[int64]
	DataSize telemetry.Instrument[int64]
}

func (m *instrumentedMarshaler[T]) Marshal(v T) ([]byte, error) {
	ctx, span := m.Telemetry.StartSpan(context.Background(), "marshaler.marshal")
	defer span.End()

	data, err := m.Next.Marshal(v)
	if err != nil {
		m.Telemetry.Error(ctx, "marshaler.marshal.error", err)
		return nil, err
	}

	size := int64(len(data))

	m.DataIO(ctx, size, telemetry.WriteDirection)
	m.DataSize(ctx, size, telemetry.WriteDirection)

	span.SetAttributes(
		telemetry.Binary("data", data),
		telemetry.Int("data_size", size),
		telemetry.Bool("data_empty", size == 0),
	)

	m.Telemetry.Info(ctx, "marshaler.marshal.ok", "marshaled value", describe(v))

	return data, nil
}

func (m *instrumentedMarshaler[T]) Unmarshal(data []byte) (T, error) {
	size := int64(len(data))

	ctx, span := m.Telemetry.StartSpan(
		context.Background(),
		"marshaler.unmarshal",
		telemetry.Binary("data", data),
		telemetry.Int("data_size", size),
		telemetry.Bool("data_empty", size == 0),
	)
	defer span.End()

	m.DataIO(ctx, size, telemetry.ReadDirection)
	m.DataSize(ctx, size, telemetry.ReadDirection)

	v, err := m.Next.Unmarshal(data)
	if err != nil {
		m.Telemetry.Error(ctx, "marshaler.unmarshal.error", err)
		return v, err
	}

	m.Telemetry.Info(ctx, "marshaler.unmarshal.ok", "unmarshaled value", describe(v))

	return v, nil
}

// describe returns an attribute containing the string representation of v, if
// it has one.
func describe(v any) telemetry.Attr {
	if s, ok := v.(fmt.Stringer); ok {
		return telemetry.Stringer("value", s)
	}
	return telemetry.Attr{}
}
