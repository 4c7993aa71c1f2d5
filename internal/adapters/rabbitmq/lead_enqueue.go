package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEnqueueAdapter - реализация LeadEventQueuePort поверх RabbitMQ.
type LeadEnqueueAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewLeadEnqueueAdapter(producer *rabbitmq_producer.Publisher) (*LeadEnqueueAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &LeadEnqueueAdapter{producer: producer}, nil
}

// PublishLeadEvent публикует событие нового лида с routing key "leads.<тип>".
func (a *LeadEnqueueAdapter) PublishLeadEvent(ctx context.Context, event domain.LeadEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component": "LeadEnqueueAdapter",
		"lead_id":   event.LeadID.String(),
		"lead_type": event.LeadType,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal lead event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    "LeadEvent",
			"event-version": "1.0.0",
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	routingKey := fmt.Sprintf("leads.%s", event.LeadType)

	// Таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing lead event", port.Fields{"routing_key": routingKey})
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish lead event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish lead event %s: %w", event.LeadID, err)
	}

	adapterLogger.Info("Successfully published lead event", nil)
	return nil
}
