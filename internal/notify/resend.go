package notify

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"toyland-backend/internal/logging"
)

// ResendNotifier e-mails each message through the Resend API.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) Publish(ctx context.Context, message string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: "New Toy Land feedback",
		Text:    message,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	logging.Ctx(ctx).Debug().Str("email_id", sent.Id).Msg("feedback notification sent")
	return nil
}
