package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/onto/internal/ui/output"
	"go.trai.ch/onto/internal/ui/style"
)

// RemedyKey is the attribute and error metadata key naming the command that
// fixes a failure. PrettyHandler prints it on a line of its own.
const RemedyKey = "remedy"

// PrettyHandler is a slog.Handler that produces human-readable, colored output.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case r.Level < slog.LevelInfo:
		msg = style.Dot + " " + r.Message
		color = termenv.RGBColor(string(style.Iris))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	var remedy string
	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	collect := func(attr slog.Attr) bool {
		if attr.Key == RemedyKey && h.group == "" {
			remedy = attr.Value.String()
			return true
		}
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}

	var b strings.Builder
	b.WriteString(h.out.String(msg).Foreground(color).String())
	b.WriteString("\n")
	if remedy != "" {
		hint := h.out.String("  Run: " + remedy).Foreground(termenv.RGBColor(string(style.Teal)))
		b.WriteString("\n")
		b.WriteString(hint.String())
		b.WriteString("\n")
	}

	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: append(slices.Clone(h.attrs), attrs...),
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
