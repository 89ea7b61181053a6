package mailer

import (
	"context"
	"fmt"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

const senderName = "ShopCrypto"

// SendGrid implements Mailer on the SendGrid v3 API.
type SendGrid struct {
	apiKey string
	from   string
}

func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{apiKey: apiKey, from: from}
}

func (c *SendGrid) Send(ctx context.Context, to, subject, body string) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if c.from == "" {
		return fmt.Errorf("from address is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(senderName, c.from),
		subject,
		mail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}

	if response.StatusCode >= 400 {
		logger.FromCtx(ctx).Error("sendgrid rejected mail",
			zap.Int("status", response.StatusCode),
			zap.String("to", to),
		)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	logger.FromCtx(ctx).Info("mail sent",
		zap.Int("status", response.StatusCode),
		zap.String("to", to),
		zap.String("subject", subject),
	)

	return nil
}
