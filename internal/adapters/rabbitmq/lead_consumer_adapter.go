package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/contracts"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	usecases_port "brokerage-service/internal/core/port/usecases_port"
	"brokerage-service/pkg/rabbitmq/rabbitmq_common"
	"brokerage-service/pkg/rabbitmq/rabbitmq_consumer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadConsumerAdapter - входящий адаптер, который слушает очередь событий
// о новых лидах и вызывает use case отправки уведомлений.
type LeadConsumerAdapter struct {
	consumer rabbitmq_consumer.Consumer
	useCase  usecases_port.NotifyLeadUseCase
	logger   port.LoggerPort
}

// NewLeadConsumerAdapter создает новый адаптер.
func NewLeadConsumerAdapter(
	consumerCfg rabbitmq_consumer.ConsumerConfig,
	useCase usecases_port.NotifyLeadUseCase,
	logger port.LoggerPort,
	connManager *rabbitmq_common.ConnectionManager,
) (*LeadConsumerAdapter, error) {

	adapter := &LeadConsumerAdapter{
		useCase: useCase,
		logger:  logger,
	}

	// Логгер для pkg-уровня с контекстом нашего компонента
	pkgLogger := logger.WithFields(port.Fields{"component": "rabbitmq_lead_consumer", "consumer_tag": consumerCfg.ConsumerTag})
	consumerCfg.Logger = NewPkgLoggerBridge(pkgLogger)

	consumer, err := rabbitmq_consumer.NewDistributingConsumer(consumerCfg, adapter.messageHandler, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create RabbitMQ consumer for lead events: %w", err)
	}
	adapter.consumer = consumer

	return adapter, nil
}

// messageHandler обрабатывает одно сообщение из очереди.
// Возврат ошибки запускает механизм ретраев консьюмера.
func (a *LeadConsumerAdapter) messageHandler(d amqp.Delivery) error {
	traceID, _ := d.Headers["x-trace-id"].(string)
	if traceID == "" {
		traceID = uuid.New().String()
	}

	msgLogger := a.logger.WithFields(port.Fields{
		"trace_id":     traceID,
		"message_id":   d.MessageId,
		"adapter_name": "LeadConsumerAdapter",
	})

	ctx := context.Background()
	ctx = contextkeys.ContextWithLogger(ctx, msgLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)

	msgLogger.Info("Received lead event message", nil)

	// Валидация по схеме
	eventType, _ := d.Headers["event-type"].(string)
	eventVersion, _ := d.Headers["event-version"].(string)
	if err := contracts.ValidateEvent(eventType, eventVersion, d.Body); err != nil {
		msgLogger.Error("Message failed schema validation. Rejecting.", err, nil)
		return err
	}

	var event domain.LeadEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal lead event: %w", err)
	}

	if err := a.useCase.Execute(ctx, event); err != nil {
		msgLogger.Error("Notify lead use case failed, message will be retried.", err, nil)
		return err
	}

	msgLogger.Info("Lead event processed successfully", nil)
	return nil
}

// Start реализует EventListenerPort, запуская прослушивание очереди
func (a *LeadConsumerAdapter) Start(ctx context.Context) error {
	return a.consumer.StartConsuming(ctx)
}

// Close реализует EventListenerPort, корректно останавливая консьюмера
func (a *LeadConsumerAdapter) Close() error {
	return a.consumer.Close()
}
