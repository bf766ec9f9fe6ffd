package event

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/assettrack/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Bus delivers domain events to in-process handlers.
//
// Services publish after their transaction commits, so delivery is
// best effort: a failing or panicking handler is logged and the
// remaining handlers still run. Publish never returns a handler error.
type Bus struct {
	registry *Registry
	logger   *zap.Logger
	running  atomic.Bool
	inflight sync.WaitGroup
}

// NewBus creates a stopped bus; call Start before publishing
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{registry: NewRegistry(), logger: logger}
}

// Publish dispatches each event to its handlers synchronously
func (b *Bus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.running.Load() {
		for _, e := range events {
			b.logger.Warn("event bus not running, event dropped",
				zap.String("event_type", e.EventType()),
				zap.String("event_id", e.EventID().String()))
		}
		return nil
	}

	b.inflight.Add(1)
	defer b.inflight.Done()

	for _, e := range events {
		for _, h := range b.registry.HandlersFor(e.EventType()) {
			if err := b.dispatch(ctx, h, e); err != nil {
				b.logger.Error("event handler failed",
					zap.String("event_type", e.EventType()),
					zap.String("event_id", e.EventID().String()),
					zap.Error(err))
			}
		}
	}
	return nil
}

func (b *Bus) dispatch(ctx context.Context, h shared.EventHandler, e shared.DomainEvent) (err error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, "event."+e.EventType(),
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			telemetry.AttrEventType.String(e.EventType()),
			attribute.String("event.id", e.EventID().String()),
			attribute.String("event.aggregate_id", e.AggregateID().String()),
		))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
		telemetry.EndSpan(span, err)
	}()

	return h.Handle(ctx, e)
}

// Subscribe registers handler; with no explicit types the handler's own EventTypes are used
func (b *Bus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("event handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes handler from every type
func (b *Bus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
}

// Start enables delivery
func (b *Bus) Start(ctx context.Context) error {
	b.running.Store(true)
	b.logger.Info("Event bus started", zap.Strings("event_types", b.registry.Types()))
	return nil
}

// Stop disables delivery and waits for in-flight publishes or ctx expiry
func (b *Bus) Stop(ctx context.Context) error {
	b.running.Store(false)

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		b.logger.Info("Event bus stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus stop: %w", ctx.Err())
	}
}

var _ shared.EventBus = (*Bus)(nil)
