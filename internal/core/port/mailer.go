package port

import "context"

// MailerPort - отправка писем-уведомлений менеджерам о новых лидах.
type MailerPort interface {
	Send(ctx context.Context, to []string, subject, body string) error
}
