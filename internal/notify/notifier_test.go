package notify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"toyland-backend/internal/logging"
	"toyland-backend/internal/models"
)

func TestFormatFeedback(t *testing.T) {
	msg := FormatFeedback(&models.Feedback{Name: "Rafi", Email: "rafi@example.com", Rating: 3, Message: "Love the site"})

	for _, want := range []string{"From: Rafi <rafi@example.com>", "Rating: ***", "Message: Love the site"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}

	anon := FormatFeedback(&models.Feedback{Message: "hi"})
	if strings.Contains(anon, "From:") || strings.Contains(anon, "Rating:") {
		t.Errorf("anonymous feedback should omit sender and rating: %q", anon)
	}
}

func TestLogNotifierWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(zerolog.New(&buf))
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() { logging.Init(logging.Config{}) })

	if err := NewLogNotifier().Publish(context.Background(), "hello"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !strings.Contains(buf.String(), `"notification":"hello"`) {
		t.Errorf("log output = %s", buf.String())
	}
}

func TestResendNotifierImplementsNotifier(t *testing.T) {
	var _ Notifier = NewResendNotifier("re_test", "from@example.com", "to@example.com")
	var _ Notifier = NewLogNotifier()
}
