package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_DefaultsToLogNotifier(t *testing.T) {
	n, err := New("", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := n.(LogNotifier); !ok {
		t.Fatalf("expected LogNotifier, got %T", n)
	}
}

func TestNew_UnknownType(t *testing.T) {
	if _, err := New("carrier-pigeon", nil); err == nil {
		t.Fatalf("expected error for unknown notifier type")
	}
}

func TestNew_WebhookRequiresURL(t *testing.T) {
	if _, err := New("webhook", map[string]interface{}{}); err == nil {
		t.Fatalf("expected error for webhook without url")
	}
}

func TestWebhookNotifier_PostsMessageJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("webhook body must be JSON: %v", err)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	n, err := New("webhook", map[string]interface{}{"url": srv.URL})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := n.Notify(context.Background(), Message{Text: "bad credentials"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got["notificationMessage"] != "bad credentials" {
		t.Fatalf("expected notificationMessage field, got %v", got)
	}
}

func TestRegister_CustomNotifier(t *testing.T) {
	called := 0
	Register("test-sink", func(_ map[string]interface{}) (Notifier, error) {
		return Func(func(context.Context, Message) error {
			called++
			return nil
		}), nil
	})

	n, err := New("test-sink", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := n.Notify(context.Background(), Message{Text: "x"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if called != 1 {
		t.Fatalf("expected one dispatch, got %d", called)
	}
}
