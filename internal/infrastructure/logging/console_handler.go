package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiGray   = "\033[90m"
)

// ConsoleHandler is a slog.Handler printing one bracketed line per record:
//
//	[INFO] [matcher] [15:04:05] attached id sku=101837 id=6910
//
// A "system" attribute moves into the second bracket instead of the
// key=value tail. Values containing spaces or quotes are quoted so the
// line stays splittable, which matters once product descriptions start
// showing up in logs.
type ConsoleHandler struct {
	w      io.Writer
	level  slog.Level
	mu     *sync.Mutex
	system string
	colors bool
	prefix string // dotted group path, "a.b." inside WithGroup("a").WithGroup("b")
	attrs  []slog.Attr
}

// NewConsoleHandler creates a console handler. Colors are enabled only
// when w is a terminal.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}
	return &ConsoleHandler{
		w:      w,
		level:  level,
		mu:     &sync.Mutex{},
		colors: colors,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	line := make([]byte, 0, 128)

	line = h.paint(line, levelColor(r.Level), "["+levelName(r.Level)+"]")

	if h.system != "" {
		line = append(line, " ["...)
		line = append(line, h.system...)
		line = append(line, ']')
	}

	if !r.Time.IsZero() {
		line = h.paint(line, ansiGray, " ["+r.Time.Format("15:04:05")+"]")
	}

	line = append(line, ' ')
	line = append(line, r.Message...)

	// Attrs stored by WithAttrs carry their group prefix already.
	for _, a := range h.attrs {
		line = appendAttr(line, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		line = appendAttr(line, a, h.prefix)
		return true
	})
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(line)
	return err
}

// paint wraps text in an ANSI color when colors are on.
func (h *ConsoleHandler) paint(line []byte, color, text string) []byte {
	if h.colors {
		line = append(line, color...)
	}
	line = append(line, text...)
	if h.colors {
		line = append(line, ansiReset...)
	}
	return line
}

// appendAttr appends a key=value pair. The "system" key is skipped, it
// already lives in its own bracket.
func appendAttr(line []byte, a slog.Attr, prefix string) []byte {
	if a.Key == "system" || a.Key == "" {
		return line
	}
	line = append(line, ' ')
	line = append(line, prefix...)
	line = append(line, a.Key...)
	line = append(line, '=')
	v := a.Value.Resolve().String()
	if strings.ContainsAny(v, " \"=") {
		v = strconv.Quote(v)
	}
	return append(line, v...)
}

// WithAttrs returns a handler that includes attrs on every record. A
// "system" attribute is pulled out and shown in its own bracket.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, a := range attrs {
		if a.Key == "system" {
			next.system = a.Value.String()
			continue
		}
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

// WithGroup qualifies later attribute keys with name, so
// WithGroup("feed") followed by rows=10 prints feed.rows=10.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

// clone copies the handler but shares the mutex, so derived handlers
// still serialize writes to the same writer.
func (h *ConsoleHandler) clone() *ConsoleHandler {
	next := *h
	next.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+4)
	copy(next.attrs, h.attrs)
	return &next
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return ansiRed
	case level >= slog.LevelWarn:
		return ansiYellow
	case level >= slog.LevelInfo:
		return ansiCyan
	default:
		return ansiGray
	}
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
