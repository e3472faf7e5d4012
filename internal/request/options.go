package request

import (
	"encoding/json"
	"fmt"
	"net/textproto"
)

// DefaultContentType is injected on every request unless suppressed.
const DefaultContentType = "application/json; charset=UTF-8"

// SuppressContentTypeHeader is the legacy sentinel key: callers that place it
// in Options.Headers get no default content type, and the key itself is
// stripped before the request is sent. New code should prefer
// Options.OmitDefaultContentType.
const SuppressContentTypeHeader = "X-No-Content-Type"

// Options configures a single Send call. The zero value issues a POST with
// the default JSON content type and no body.
type Options struct {
	// Method defaults to POST when empty.
	Method string
	// Headers are sent verbatim and win over the default content type.
	Headers map[string]string
	// Query parameters appended to the request URL.
	Query map[string]string
	// Body may be nil, string, []byte, json.RawMessage, or any value that
	// marshals to JSON.
	Body any
	// OmitDefaultContentType disables injection of DefaultContentType
	// without resorting to the sentinel header key.
	OmitDefaultContentType bool
}

// mergeHeaders applies the default-content-type policy: strip the sentinel
// key if present, and inject DefaultContentType unless suppression was
// requested or the caller already set a content type.
func mergeHeaders(opts Options) map[string]string {
	hdrs := make(map[string]string, len(opts.Headers)+1)
	suppress := opts.OmitDefaultContentType
	hasContentType := false

	for k, v := range opts.Headers {
		canon := textproto.CanonicalMIMEHeaderKey(k)
		if canon == textproto.CanonicalMIMEHeaderKey(SuppressContentTypeHeader) {
			suppress = true
			continue
		}
		if canon == "Content-Type" {
			hasContentType = true
		}
		hdrs[k] = v
	}

	if !suppress && !hasContentType {
		hdrs["Content-Type"] = DefaultContentType
	}
	return hdrs
}

// encodeBody normalizes Options.Body to raw bytes. Strings and byte slices
// pass through untouched; anything else is marshaled to JSON.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("request: encode body: %w", err)
		}
		return data, nil
	}
}
