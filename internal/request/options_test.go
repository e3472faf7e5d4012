package request

import (
	"encoding/json"
	"testing"
)

func TestMergeHeaders_Default(t *testing.T) {
	hdrs := mergeHeaders(Options{})
	if hdrs["Content-Type"] != DefaultContentType {
		t.Fatalf("expected default content type, got %v", hdrs)
	}
}

func TestMergeHeaders_SentinelCaseInsensitive(t *testing.T) {
	hdrs := mergeHeaders(Options{Headers: map[string]string{"x-no-content-type": "yes", "X-Other": "v"}})
	if _, ok := hdrs["x-no-content-type"]; ok {
		t.Fatalf("sentinel key must be stripped, got %v", hdrs)
	}
	if _, ok := hdrs["Content-Type"]; ok {
		t.Fatalf("default content type must be suppressed, got %v", hdrs)
	}
	if hdrs["X-Other"] != "v" {
		t.Fatalf("other headers must survive, got %v", hdrs)
	}
}

func TestMergeHeaders_CallerWins(t *testing.T) {
	hdrs := mergeHeaders(Options{Headers: map[string]string{"content-type": "text/plain"}})
	if hdrs["content-type"] != "text/plain" {
		t.Fatalf("caller content type must be kept, got %v", hdrs)
	}
	if _, ok := hdrs["Content-Type"]; ok {
		t.Fatalf("default must not be injected alongside caller's, got %v", hdrs)
	}
}

func TestEncodeBody(t *testing.T) {
	if b, err := encodeBody(nil); err != nil || b != nil {
		t.Fatalf("nil body: got %v %v", b, err)
	}
	if b, _ := encodeBody("raw"); string(b) != "raw" {
		t.Fatalf("string body must pass through, got %q", b)
	}
	if b, _ := encodeBody([]byte(`{"a":1}`)); string(b) != `{"a":1}` {
		t.Fatalf("byte body must pass through, got %q", b)
	}
	if b, _ := encodeBody(json.RawMessage(`[1]`)); string(b) != `[1]` {
		t.Fatalf("raw message must pass through, got %q", b)
	}
	b, err := encodeBody(map[string]int{"n": 2})
	if err != nil || string(b) != `{"n":2}` {
		t.Fatalf("map body must marshal, got %q %v", b, err)
	}
	if _, err := encodeBody(func() {}); err == nil {
		t.Fatalf("unmarshalable body must error")
	}
}
