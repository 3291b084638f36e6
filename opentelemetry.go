package pullstream

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/hoangvvo/pullstream-go"
)

var tracer trace.Tracer

func getTracer() trace.Tracer {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return tracer
}

type streamSpan struct {
	startTime        time.Time
	span             trace.Span
	values           int64
	timeToFirstValue *float64
	ended            bool
}

func newStreamSpan(ctx context.Context, name string) (context.Context, *streamSpan) {
	spanCtx, span := getTracer().Start(ctx, "pullstream.consume",
		trace.WithAttributes(
			attribute.String("stream.name", name),
			attribute.String("stream.id", uuid.NewString()),
		))
	return spanCtx, &streamSpan{
		startTime: time.Now(),
		span:      span,
	}
}

func (s *streamSpan) OnAdvance() {
	s.values++
	if s.timeToFirstValue == nil {
		elapsed := time.Since(s.startTime).Seconds()
		s.timeToFirstValue = &elapsed
		s.span.SetAttributes(
			attribute.Float64("stream.time_to_first_value", elapsed),
		)
	}
}

func (s *streamSpan) OnError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *streamSpan) OnEnd() {
	if s.ended {
		return
	}
	s.ended = true
	s.span.SetAttributes(attribute.Int64("stream.values", s.values))
	s.span.End()
}

// TracedStream decorates a stream with an OpenTelemetry span covering its
// consumption: how many values the consumer pulled, how long the first one
// took to arrive, and whether consumption ended in a fatal advance.
type TracedStream[X any] struct {
	inner Stream[X]
	span  *streamSpan
}

// Traced wraps s in a TracedStream named name. The span starts immediately
// and ends either when an advance fails fatally or when the consumer calls
// End to abandon the stream. The returned context carries the span, so child
// spans opened while handling pulled values nest under it.
func Traced[X any](ctx context.Context, name string, s Stream[X]) (context.Context, *TracedStream[X]) {
	spanCtx, span := newStreamSpan(ctx, name)
	return spanCtx, &TracedStream[X]{inner: s, span: span}
}

// Head returns the buffered value of the underlying stream.
func (t *TracedStream[X]) Head() X {
	return t.inner.Head()
}

// Tail advances the underlying stream and counts the delivered value on the
// span. If the advance fails fatally, Tail records the failure, ends the
// span, and resumes the panic.
func (t *TracedStream[X]) Tail() Stream[X] {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				t.span.OnError(err)
			}
			t.span.OnEnd()
			panic(r)
		}
	}()
	t.inner = t.inner.Tail()
	t.span.OnAdvance()
	return t
}

// End finishes the span for a consumer that abandons the stream without
// advancing it to exhaustion. Calling End more than once is harmless.
func (t *TracedStream[X]) End() {
	t.span.OnEnd()
}
