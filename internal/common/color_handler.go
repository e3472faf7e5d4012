package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// ANSI color codes
const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"
	white   = "\033[37m"
	gray    = "\033[90m"
)

// sensitiveKeys are attribute keys whose values are masked in log output.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"access_token":  {},
	"authorization": {},
	"cookie":        {},
}

// ColorHandler implements a colorized text handler for slog
type ColorHandler struct {
	opts     *slog.HandlerOptions
	writer   io.Writer
	attrs    []slog.Attr
	groups   []string
	useColor bool
}

// NewColorHandler creates a new color handler
func NewColorHandler(w io.Writer, opts *slog.HandlerOptions) *ColorHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &ColorHandler{
		opts:     opts,
		writer:   w,
		useColor: shouldUseColor(w),
	}
}

// shouldUseColor determines if colors should be used based on the output
func shouldUseColor(w io.Writer) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// Enabled reports whether the handler handles records at the given level
func (h *ColorHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle handles the Record
func (h *ColorHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)

	if !r.Time.IsZero() {
		buf = append(buf, h.colorize(gray, r.Time.Format(time.RFC3339))...)
		buf = append(buf, " "...)
	}

	buf = append(buf, h.formatLevel(r.Level)...)
	buf = append(buf, " "...)

	if len(h.groups) > 0 {
		component := strings.Join(h.groups, ".")
		buf = append(buf, h.colorize(cyan, fmt.Sprintf("[%s]", component))...)
		buf = append(buf, " "...)
	}

	buf = append(buf, h.colorize(white, r.Message)...)

	attrs := make([]slog.Attr, 0, r.NumAttrs()+len(h.attrs))
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	for _, attr := range attrs {
		buf = append(buf, " "...)
		buf = append(buf, h.colorize(cyan, attr.Key)...)
		buf = append(buf, "="...)
		buf = append(buf, h.formatValue(attr)...)
	}

	buf = append(buf, "\n"...)

	_, err := h.writer.Write(buf)
	return err
}

// formatLevel formats the log level with appropriate colors
func (h *ColorHandler) formatLevel(level slog.Level) string {
	var color string
	var levelStr string

	switch level {
	case slog.LevelDebug:
		color = gray
		levelStr = "DEBUG"
	case slog.LevelInfo:
		color = green
		levelStr = "INFO "
	case slog.LevelWarn:
		color = yellow
		levelStr = "WARN "
	case slog.LevelError:
		color = red
		levelStr = "ERROR"
	default:
		color = white
		levelStr = "UNKNOWN"
	}

	return h.colorize(color, fmt.Sprintf("[%s]", levelStr))
}

// formatValue renders an attribute value, masking sensitive keys.
func (h *ColorHandler) formatValue(attr slog.Attr) string {
	if _, sensitive := sensitiveKeys[strings.ToLower(attr.Key)]; sensitive {
		return h.colorize(yellow, `"*****"`)
	}

	v := attr.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return h.colorize(white, fmt.Sprintf("%q", v.String()))
	case slog.KindInt64:
		return h.colorize(magenta, fmt.Sprintf("%d", v.Int64()))
	case slog.KindFloat64:
		return h.colorize(magenta, fmt.Sprintf("%g", v.Float64()))
	case slog.KindBool:
		if v.Bool() {
			return h.colorize(green, "true")
		}
		return h.colorize(red, "false")
	case slog.KindDuration:
		return h.colorize(magenta, v.Duration().String())
	default:
		return h.colorize(white, fmt.Sprintf("%v", v.Any()))
	}
}

// colorize wraps text in a color code when color output is enabled
func (h *ColorHandler) colorize(color, text string) string {
	if !h.useColor {
		return text
	}
	return color + text + reset
}

// WithAttrs returns a new handler whose attributes include both the receiver's and the arguments'
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a new handler with the given group appended
func (h *ColorHandler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
