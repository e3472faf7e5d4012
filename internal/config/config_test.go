package config

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/innoalumni/portalkit/internal/notify"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portalctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullDocument(t *testing.T) {
	path := writeConfig(t, `
backend_url: https://api.example.com
logging:
  level: debug
  format: json
client:
  insecure: true
  min_tls_version: "1.2"
notify:
  type: webhook
  config:
    url: https://hooks.example.com/portal
history:
  disabled: true
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.BackendURL != "https://api.example.com" {
		t.Fatalf("unexpected backend_url: %q", doc.BackendURL)
	}
	if !doc.History.Disabled {
		t.Fatalf("expected history disabled")
	}

	cfg := doc.TLSConfig()
	if cfg == nil || !cfg.InsecureSkipVerify || cfg.MinVersion != tls.VersionTLS12 {
		t.Fatalf("unexpected tls config: %+v", cfg)
	}

	n, err := doc.Notifier()
	if err != nil {
		t.Fatalf("notifier: %v", err)
	}
	if _, ok := n.(*notify.WebhookNotifier); !ok {
		t.Fatalf("expected webhook notifier, got %T", n)
	}
}

func TestLoad_MissingFileIsEmptyDoc(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if doc.BackendURL != "" {
		t.Fatalf("expected zero document, got %+v", doc)
	}
	if doc.TLSConfig() != nil {
		t.Fatalf("empty client block must yield nil tls config")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "backend_url: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBaseURL_ResolutionOrder(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://env.example.com")
	t.Setenv("PORT", "7000")

	doc := &ConfigDoc{BackendURL: "https://cfg.example.com"}
	if got := doc.BaseURL(); got != "https://cfg.example.com" {
		t.Fatalf("config must win over env, got %q", got)
	}

	doc = &ConfigDoc{}
	if got := doc.BaseURL(); got != "https://env.example.com" {
		t.Fatalf("BACKEND_URL must win over port fallback, got %q", got)
	}

	t.Setenv("BACKEND_URL", "")
	if got := doc.BaseURL(); got != "http://0.0.0.0:7000" {
		t.Fatalf("expected env PORT fallback, got %q", got)
	}

	doc = &ConfigDoc{Port: "8443"}
	if got := doc.BaseURL(); got != "http://0.0.0.0:8443" {
		t.Fatalf("config port must win over env PORT, got %q", got)
	}

	t.Setenv("PORT", "")
	doc = &ConfigDoc{}
	if got := doc.BaseURL(); got != "http://0.0.0.0:9001" {
		t.Fatalf("expected built-in default, got %q", got)
	}
}

func TestSender_FromDocument(t *testing.T) {
	doc := &ConfigDoc{BackendURL: "https://cfg.example.com/"}
	s, err := doc.Sender()
	if err != nil {
		t.Fatalf("sender: %v", err)
	}
	if s.BaseURL() != "https://cfg.example.com" {
		t.Fatalf("expected trimmed base url, got %q", s.BaseURL())
	}
}
