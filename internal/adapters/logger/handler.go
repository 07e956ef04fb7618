package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// Palette.
const (
	colorMuted  = "#6B7280"
	colorTrace  = "#0EA5E9"
	colorFailed = "#DC2626"
	colorNotice = "#D97706"
)

// levelStyle is the prefix and foreground used for one band of levels.
type levelStyle struct {
	prefix string
	color  string
}

// styleFor maps a record level to its band.
func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{prefix: "✗ ", color: colorFailed}
	case level >= slog.LevelWarn:
		return levelStyle{prefix: "! ", color: colorNotice}
	case level < slog.LevelInfo:
		return levelStyle{prefix: "· ", color: colorTrace}
	}
	return levelStyle{color: colorMuted}
}

// colorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true))
}

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Attribute values holding whitespace are quoted so expression text stays on one token.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{out: newOutput(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	style := styleFor(r.Level)

	var b strings.Builder
	b.WriteString(style.prefix)
	b.WriteString(r.Message)

	parts := slices.Clip(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}

	styled := h.out.String(b.String()).Foreground(h.out.Color(style.color))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the formatted attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	parts := make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(parts, h.attrs)
	for _, attr := range attrs {
		parts = appendAttr(parts, h.prefix, attr)
	}
	return &PrettyHandler{out: h.out, level: h.level, prefix: h.prefix, attrs: parts}
}

// WithGroup returns a new Handler whose later keys are qualified by name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &PrettyHandler{out: h.out, level: h.level, prefix: join(h.prefix, name), attrs: h.attrs}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// appendAttr formats attr as key=value, flattening groups into dotted keys.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	key := join(prefix, attr.Key)
	if attr.Value.Kind() == slog.KindGroup {
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, key, a)
		}
		return parts
	}
	return append(parts, key+"="+formatValue(attr.Value))
}

// formatValue renders scalars compactly.
func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String()
	}
	s := v.String()
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
