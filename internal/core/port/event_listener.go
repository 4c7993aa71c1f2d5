package port

import "context"

// EventListenerPort - контракт для компонента, слушающего события лидов
// из очереди и запускающего рассылку уведомлений.
type EventListenerPort interface {
	// Start запускает слушателя
	Start(ctx context.Context) error

	// Close корректно останавливает слушателя, дожидаясь обработки активных сообщений
	Close() error
}
