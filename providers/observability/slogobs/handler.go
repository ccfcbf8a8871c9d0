package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"
)

// timeLayout is shared by the compact and pretty formats. The JSON format
// uses a T separator so the field parses as a timestamp downstream.
const (
	timeLayout     = "2006-01-02 15:04:05"
	jsonTimeLayout = "2006-01-02T15:04:05"
)

// attrIndent lines pretty-format attribute rows up under the message.
const attrIndent = "                   "

// Handler is a slog.Handler with three output formats: a single-line
// compact form, a multi-line pretty form for interactive use, and plain
// JSON. Writes are serialized through a mutex so concurrent loggers do
// not interleave records.
type Handler struct {
	format Format
	level  slog.Level
	output io.Writer
	colors bool
	mu     sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Format selects the output format. Empty means FormatCompact.
	Format Format
	// Level is the minimum level to emit.
	Level slog.Level
	// Output is the destination writer. Nil means os.Stdout.
	Output io.Writer
	// Colors forces ANSI colors on. When false, colors are still enabled
	// automatically if Output is a terminal (JSON never uses colors).
	Colors bool
}

// NewHandler builds a Handler, filling in defaults for unset options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	format := opts.Format
	if format == "" {
		format = FormatCompact
	}

	colors := opts.Colors
	if !colors && format != FormatJSON {
		if f, ok := output.(*os.File); ok {
			colors = isTerminal(f)
		}
	}

	return &Handler{
		format: format,
		level:  opts.Level,
		output: output,
		colors: colors,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats the record according to the configured format and writes
// it to the output.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.format {
	case FormatPretty:
		return h.handlePretty(r)
	case FormatJSON:
		return h.handleJSON(r)
	default:
		return h.handleCompact(r)
	}
}

// WithAttrs returns a handler that includes attrs in every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	c.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return c
}

// WithGroup returns a handler that qualifies attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(append([]string{}, h.groups...), name)
	return c
}

// clone copies the handler without its mutex; callers replace attrs or
// groups on the copy before returning it.
func (h *Handler) clone() *Handler {
	return &Handler{
		format: h.format,
		level:  h.level,
		output: h.output,
		colors: h.colors,
		attrs:  h.attrs,
		groups: h.groups,
	}
}

// handleCompact writes one line per record:
//
//	2026-01-02 15:04:05  INFO Message → {"key":"value"}
//
// The attribute block is omitted when the record has none.
func (h *Handler) handleCompact(r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(h.paint(r.Level, fmt.Sprintf("%5s", levelString(r.Level))))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	if attrs := h.recordAttrs(r); len(attrs) > 0 {
		b.WriteString(" → ")
		if data, err := json.Marshal(attrs); err != nil {
			b.WriteString("[json-error]")
		} else {
			b.Write(data)
		}
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.output, b.String())
	return err
}

// handlePretty writes the record header on one line and each attribute on
// its own branch below it:
//
//	2026-01-02 15:04:05 🟢 INFO   Message
//	                   ├─ key: value
//	                   └─ last: value
//
// Attributes are sorted by key so output is stable across runs.
func (h *Handler) handlePretty(r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(levelEmoji(r.Level))
	b.WriteByte(' ')

	level := levelString(r.Level)
	b.WriteString(h.paint(r.Level, level))
	b.WriteString(strings.Repeat(" ", 7-len(level)))
	b.WriteString(r.Message)
	b.WriteByte('\n')

	attrs := h.recordAttrs(r)
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		branch := "├─ "
		if i == len(keys)-1 {
			branch = "└─ "
		}
		fmt.Fprintf(&b, "%s%s%s: %v\n", attrIndent, branch, key, attrs[key])
	}

	_, err := io.WriteString(h.output, b.String())
	return err
}

// handleJSON writes the record as one JSON object per line, with time,
// level, and msg fields and the attributes merged at the top level.
func (h *Handler) handleJSON(r slog.Record) error {
	data := map[string]any{
		"time":  r.Time.Format(jsonTimeLayout),
		"level": levelString(r.Level),
		"msg":   r.Message,
	}
	for key, value := range h.recordAttrs(r) {
		data[key] = value
	}

	out, err := json.Marshal(data)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = h.output.Write(out)
	return err
}

// recordAttrs merges handler-level attributes with the record's own,
// qualifying every key with the open groups.
func (h *Handler) recordAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrs[h.prefixed(attr.Key)] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[h.prefixed(attr.Key)] = attr.Value.Any()
		return true
	})
	return attrs
}

// prefixed qualifies a key with the open groups, outermost first.
func (h *Handler) prefixed(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// paint wraps s in the ANSI color for level when colors are enabled.
func (h *Handler) paint(level slog.Level, s string) string {
	if !h.colors {
		return s
	}
	return levelColor(level) + s + colorReset
}

// levelString maps a level to its label, treating anything below DEBUG
// as TRACE.
func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorGray
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

func levelEmoji(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "🔍"
	case level < slog.LevelInfo:
		return "🔵"
	case level < slog.LevelWarn:
		return "🟢"
	case level < slog.LevelError:
		return "🟡"
	default:
		return "🔴"
	}
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
