package notify

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/innoalumni/portalkit/internal/common"
)

// Message is the payload delivered to a Notifier when a portal call fails.
type Message struct {
	// Text carries the server's detail string for the failed call.
	Text string `json:"notificationMessage"`
}

// Notifier receives user-facing failure notifications. Implementations must be
// safe for concurrent use; the request sender may invoke them from any call.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, msg Message) error

func (f Func) Notify(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// LogNotifier writes notifications to the structured log. It is the default
// sink when no other notifier is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg Message) error {
	common.GetLogger().WithComponent("notify").Warn("portal request failed", "message", msg.Text)
	return nil
}

// WebhookNotifier POSTs each notification as JSON to a configured URL.
// The original portal forwarded failures to a chat bot; a webhook keeps that
// side-channel without binding to a specific messenger.
type WebhookNotifier struct {
	URL    string
	client *resty.Client
}

// NewWebhookNotifier returns a notifier posting to url.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{URL: url, client: resty.New()}
}

func (w *WebhookNotifier) Notify(ctx context.Context, msg Message) error {
	_, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(w.URL)
	if err != nil {
		common.GetLogger().WithComponent("notify").Error("webhook dispatch failed", "error", err, "url", w.URL)
	}
	return err
}
