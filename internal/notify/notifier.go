package notify

import (
	"context"
	"fmt"
	"strings"

	"toyland-backend/internal/models"
)

// Notifier publishes a short text message to whoever reviews feedback.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}

// FormatFeedback renders a feedback entry as a notification message.
func FormatFeedback(f *models.Feedback) string {
	var b strings.Builder
	b.WriteString("New feedback received\n")
	if f.Name != "" || f.Email != "" {
		fmt.Fprintf(&b, "From: %s <%s>\n", f.Name, f.Email)
	}
	if f.Rating > 0 {
		fmt.Fprintf(&b, "Rating: %s\n", strings.Repeat("*", f.Rating))
	}
	b.WriteString("Message: ")
	b.WriteString(f.Message)
	return b.String()
}
