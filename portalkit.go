package portalkit

import (
	"context"

	"github.com/innoalumni/portalkit/internal/api"
	"github.com/innoalumni/portalkit/internal/excel"
	"github.com/innoalumni/portalkit/internal/notify"
	"github.com/innoalumni/portalkit/internal/request"
)

// Re-export commonly used types for public API

// Sender issues single HTTP calls against the portal backend.
type Sender = request.Sender

// SenderConfig holds the explicit dependencies of a Sender.
type SenderConfig = request.Config

// Options configures a single Send call.
type Options = request.Options

// Result is the outcome of a completed HTTP exchange.
type Result = request.Result

// APIError carries the backend's detail message for a failed call.
type APIError = request.APIError

// Notifier receives failure notifications.
type Notifier = notify.Notifier

// NotifyFunc adapts a function to the Notifier interface.
type NotifyFunc = notify.Func

// NotifyMessage is the payload delivered on failure.
type NotifyMessage = notify.Message

// ExcelRecord is one flat row of a spreadsheet export.
type ExcelRecord = excel.Record

// Client provides typed portal operations (login, donations, passes).
type Client = api.Client

// NewSender returns a Sender for cfg.
func NewSender(cfg SenderConfig) *Sender { return request.New(cfg) }

// NewSenderFromEnv builds a Sender following the BACKEND_URL / PORT
// environment contract.
func NewSenderFromEnv(n Notifier) *Sender { return request.FromEnv(n) }

// NewClient returns a typed portal client over s.
func NewClient(s *Sender) *Client { return api.NewClient(s) }

// RegisterNotifier exposes custom notifier registration for library users.
func RegisterNotifier(typ string, f notify.Factory) { notify.Register(typ, f) }

// ExportToExcel converts records into a single-sheet workbook and writes
// <fileName>.xlsx to the current directory.
func ExportToExcel(records []ExcelRecord, fileName string) error {
	return excel.New().Export(records, fileName)
}

// Send performs a one-off call with an environment-resolved Sender. Most
// callers should construct a Sender once and reuse it.
func Send(ctx context.Context, path string, opts Options) (*Result, error) {
	return request.FromEnv(nil).Send(ctx, path, opts)
}
