package logger

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "academyhub.app/server"

// SpanContext pairs a span with the context that carries it.
type SpanContext struct {
	ctx  context.Context
	span trace.Span
}

// StartSpan starts a child of the current span. The academy, user, room and
// task fields already on ctx become span attributes, so a trace can be
// searched by the same keys as the logs.
//
//	sc := logger.StartSpan(ctx, "mailer.send")
//	defer sc.End()
//	ctx = sc.Context()
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) *SpanContext {
	opts = append(opts, trace.WithAttributes(fieldAttributes(GetLogFields(ctx))...))
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, opts...)
	return &SpanContext{ctx: ctx, span: span}
}

// StartSpanFromTraceID continues a trace that crossed the email task stream.
// The hex trace id comes from the task payload; an empty or malformed id
// starts a fresh trace.
func StartSpanFromTraceID(ctx context.Context, traceIDHex string, name string, opts ...trace.SpanStartOption) *SpanContext {
	if traceID, err := trace.TraceIDFromHex(traceIDHex); err == nil {
		remote := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			TraceFlags: trace.FlagsSampled,
			Remote:     true,
		})
		opts = append(opts,
			trace.WithLinks(trace.Link{SpanContext: remote}),
			trace.WithSpanKind(trace.SpanKindConsumer),
		)
		ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
	}
	return StartSpan(ctx, name, opts...)
}

func (sc *SpanContext) Context() context.Context {
	return sc.ctx
}

// End is safe to call more than once.
func (sc *SpanContext) End() {
	if sc.span != nil {
		sc.span.End()
	}
}

// RecordError marks the span failed. A nil err is ignored.
func (sc *SpanContext) RecordError(err error) {
	if sc.span == nil || err == nil {
		return
	}
	sc.span.RecordError(err)
	sc.span.SetStatus(codes.Error, err.Error())
}

func (sc *SpanContext) Span() trace.Span {
	return sc.span
}

func fieldAttributes(f LogFields) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if f.AcademyID != nil {
		attrs = append(attrs, attribute.Int64("academyhub.academy_id", *f.AcademyID))
	}
	if f.UserID != nil {
		attrs = append(attrs, attribute.Int64("academyhub.user_id", *f.UserID))
	}
	if f.RoomID != nil {
		attrs = append(attrs, attribute.Int64("academyhub.room_id", *f.RoomID))
	}
	if f.MessageID != nil {
		attrs = append(attrs, attribute.String("messaging.message.id", *f.MessageID))
	}
	if f.TaskType != nil {
		attrs = append(attrs, attribute.String("academyhub.task_type", *f.TaskType))
	}
	if f.Component != "" {
		attrs = append(attrs, attribute.String("academyhub.component", f.Component))
	}
	return attrs
}
