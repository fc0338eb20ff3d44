package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"tracking_service/internal/ctxdata"
)

const traceHeader = "X-Trace-Id"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	publishRetries   = 3
	publishBaseDelay = 100 * time.Millisecond
	breakerThreshold = 5
	breakerReset     = 30 * time.Second
)

type EventSender struct {
	writer    messageWriter
	retries   int
	baseDelay time.Duration
	breaker   *circuitBreaker
}

func NewEventSender(brokers []string, topic string) *EventSender {
	// Retries are driven by Publish, the writer makes a single attempt.
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		MaxAttempts:            1,
		Async:                  false,
	}

	return newEventSender(writer)
}

func newEventSender(writer messageWriter) *EventSender {
	return &EventSender{
		writer:    writer,
		retries:   publishRetries,
		baseDelay: publishBaseDelay,
		breaker:   newCircuitBreaker(breakerThreshold, breakerReset),
	}
}

func (s *EventSender) Close() error {
	return s.writer.Close()
}

// Publish writes the events in order. Messages are keyed by entity id so the
// events of one submission stay on one partition.
func (s *EventSender) Publish(ctx context.Context, evs ...Event) error {
	if len(evs) == 0 {
		return nil
	}

	traceID, _ := ctxdata.GetTraceID(ctx)

	messages := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		data, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to marshal %s event: %w", ev.Type, err)
		}

		msg := kafka.Message{
			Key:   []byte(ev.Key),
			Value: data,
			Time:  ev.OccurredAt,
			Headers: []kafka.Header{
				{Key: "event-type", Value: []byte(ev.Type)},
			},
		}
		if traceID != "" {
			msg.Headers = append(msg.Headers, kafka.Header{Key: traceHeader, Value: []byte(traceID)})
		}
		messages = append(messages, msg)
	}

	err := s.breaker.execute(func() error {
		return retryWithBackoff(ctx, s.retries, s.baseDelay, func() error {
			return s.writer.WriteMessages(ctx, messages...)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to send events: %w", err)
	}

	return nil
}

// NopSender drops every event. It is used when no brokers are configured.
type NopSender struct{}

func (NopSender) Publish(context.Context, ...Event) error { return nil }

func (NopSender) Close() error { return nil }
