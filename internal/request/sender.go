package request

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/innoalumni/portalkit/internal/common"
	"github.com/innoalumni/portalkit/internal/httpc"
	"github.com/innoalumni/portalkit/internal/notify"
	"github.com/tidwall/gjson"
)

// DefaultPort is the fallback backend port when neither BACKEND_URL nor PORT
// is set in the environment.
const DefaultPort = "9001"

// Config holds the explicit dependencies of a Sender. The base URL is
// injected here rather than read from process globals so tests and embedders
// can point each Sender at a different backend.
type Config struct {
	BaseURL  string
	TLS      *tls.Config
	Notifier notify.Notifier
}

// Sender issues single outbound HTTP calls against a fixed base URL.
//
// All calls share one underlying client, so cookies set by the backend are
// included on every subsequent request. Two concurrent Send calls are fully
// independent; the Sender itself holds no per-call state.
type Sender struct {
	baseURL  string
	client   *resty.Client
	notifier notify.Notifier
}

// New returns a Sender for cfg. A nil Notifier means failures are surfaced
// only through the returned error.
func New(cfg Config) *Sender {
	h := httpc.Httpc{TlsConfig: cfg.TLS}
	return &Sender{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		client:   h.New(),
		notifier: cfg.Notifier,
	}
}

// FromEnv builds a Sender whose base URL follows the portal's environment
// contract: BACKEND_URL verbatim when set, else a local address on PORT
// (default 9001).
func FromEnv(n notify.Notifier) *Sender {
	return New(Config{BaseURL: ResolveBaseURL(), Notifier: n})
}

// ResolveBaseURL resolves the backend address from the environment.
func ResolveBaseURL() string {
	if u := os.Getenv("BACKEND_URL"); u != "" {
		return u
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	return "http://0.0.0.0:" + port
}

// BaseURL reports the resolved backend address.
func (s *Sender) BaseURL() string {
	return s.baseURL
}

// UseToken attaches a bearer token to every subsequent request. Call it once
// after login, before issuing concurrent calls.
func (s *Sender) UseToken(token string) {
	s.client.SetAuthToken(token)
}

// Result is the outcome of a completed HTTP exchange (any status).
type Result struct {
	StatusCode int
	Body       []byte
	// JSON is the parsed response body. Populated on success and on
	// application-level failures with a JSON body.
	JSON gjson.Result
}

// Send performs one HTTP call to baseURL+path.
//
// Method defaults to POST. On a 2xx status the JSON body is parsed and
// returned. On any other status the body's detail field is extracted, the
// configured notifier is invoked exactly once with that message, and an
// *APIError carrying the same message is returned alongside the Result.
// Transport errors propagate unwrapped and trigger no notification.
func (s *Sender) Send(ctx context.Context, path string, opts Options) (*Result, error) {
	logger := common.GetLogger().WithComponent("request")

	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodPost
	}
	url := s.baseURL + path

	hdrs := mergeHeaders(opts)
	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}

	req := s.client.R().SetContext(ctx).SetHeaders(hdrs).SetQueryParams(opts.Query)
	if len(body) > 0 {
		req.SetBody(body)
	}

	resp, err := execByMethod(req, method, url)
	if err != nil {
		logger.Error("HTTP request failed", "error", err, "method", method, "url", url)
		return nil, err
	}

	status := resp.StatusCode()
	raw := resp.Body()
	logger.Debug("received HTTP response", "method", method, "url", url, "status_code", status, "response_size", len(raw))

	if resp.IsSuccess() {
		return &Result{StatusCode: status, Body: raw, JSON: gjson.ParseBytes(raw)}, nil
	}

	// Failure contract: the body is parsed once; a malformed body is its own
	// failure and does not reach the notifier.
	if !gjson.ValidBytes(raw) {
		return &Result{StatusCode: status, Body: raw},
			fmt.Errorf("request: status %d with non-JSON body", status)
	}

	parsed := gjson.ParseBytes(raw)
	detail := parsed.Get("detail").String()
	logger.Debug("failure payload", "status_code", status, "body", string(raw))

	if s.notifier != nil {
		if nerr := s.notifier.Notify(ctx, notify.Message{Text: detail}); nerr != nil {
			logger.Warn("notification dispatch failed", "error", nerr)
		}
	}

	return &Result{StatusCode: status, Body: raw, JSON: parsed}, &APIError{StatusCode: status, Detail: detail}
}

func execByMethod(req *resty.Request, method, url string) (*resty.Response, error) {
	switch method {
	case http.MethodGet:
		return req.Get(url)
	case http.MethodPost:
		return req.Post(url)
	case http.MethodPut:
		return req.Put(url)
	case http.MethodPatch:
		return req.Patch(url)
	case http.MethodDelete:
		return req.Delete(url)
	case http.MethodHead:
		return req.Head(url)
	default:
		return nil, fmt.Errorf("request: unsupported method: %s", method)
	}
}
