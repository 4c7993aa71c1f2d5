package ses_adapter

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer - реализация MailerPort поверх Amazon SES.
type Mailer struct {
	client *ses.Client
	sender string
}

func NewMailer(ctx context.Context, region, sender string) (*Mailer, error) {
	if sender == "" {
		return nil, fmt.Errorf("SES sender address cannot be empty")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Mailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

// Send отправляет простое текстовое письмо.
func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) error {
	charset := aws.String("UTF-8")
	input := &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: charset},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: charset},
			},
		},
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
