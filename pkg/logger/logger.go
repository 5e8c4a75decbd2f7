// Package logger sets up the process-wide slog logger with a compact colored
// text format and carries request ids through context.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const (
	reset    = "\033[0m"
	red      = "\033[31m"
	green    = "\033[32m"
	yellow   = "\033[33m"
	magenta  = "\033[35m"
	cyan     = "\033[36m"
	white    = "\033[37m"
	boldBlue = "\033[1;34m"
	bold     = "\033[1;37m"
)

var levelColors = map[slog.Level]string{
	slog.LevelDebug: cyan,
	slog.LevelInfo:  green,
	slog.LevelWarn:  yellow,
	slog.LevelError: red,
}

type ctxKey struct{}

// RequestIDAttr is the attribute key used for request ids.
const RequestIDAttr = "request_id"

// ColoredHandler renders one line per record:
// time, level, [request id], message, then key=value attributes.
type ColoredHandler struct {
	opts   slog.HandlerOptions
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
	out    io.Writer
}

func NewColoredHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredHandler {
	h := &ColoredHandler{out: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *ColoredHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}
	return level >= threshold
}

func (h *ColoredHandler) Handle(ctx context.Context, r slog.Record) error {
	color, ok := levelColors[r.Level]
	if !ok {
		color = white
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s ", magenta, r.Time.Format("15:04:05.000"), reset)
	fmt.Fprintf(&b, "%s%-6s%s ", color, strings.ToUpper(r.Level.String()), reset)

	reqID := RequestID(ctx)
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == RequestIDAttr && reqID == "" {
			reqID = a.Value.String()
			return true
		}
		attrs = append(attrs, a)
		return true
	})
	if reqID != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", boldBlue, reqID, reset)
	}
	fmt.Fprintf(&b, "%s%s%s", bold, r.Message, reset)

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range attrs {
		if a.Key == RequestIDAttr {
			continue
		}
		val := a.Value.Resolve().String()
		if a.Value.Kind() == slog.KindString {
			val = fmt.Sprintf("%q", val)
		}
		fmt.Fprintf(&b, " %s%s%s%s=%s", yellow, prefix, a.Key, reset, val)
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *ColoredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *ColoredHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Setup installs a ColoredHandler writing to w as the default slog logger.
func Setup(level string, w io.Writer) *slog.Logger {
	l := slog.New(NewColoredHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(l)
	return l
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
