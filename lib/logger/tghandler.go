package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Notifier delivers a formatted log message to an external channel.
type Notifier interface {
	Notify(text string)
}

// TelegramHandler is a slog.Handler that forwards records at or above
// minLevel to a Notifier, after passing them to the wrapped handler.
type TelegramHandler struct {
	handler  slog.Handler
	notifier Notifier
	minLevel slog.Level
	mu       sync.Mutex
	attrs    []slog.Attr
	group    string
}

func NewTelegramHandler(handler slog.Handler, notifier Notifier, minLevel slog.Level) *TelegramHandler {
	return &TelegramHandler{
		handler:  handler,
		notifier: notifier,
		minLevel: minLevel,
		attrs:    make([]slog.Attr, 0),
	}
}

// Enabled implements slog.Handler.Enabled
func (h *TelegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.minLevel || h.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.Handle
func (h *TelegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.handler.Enabled(ctx, record.Level) {
		if err := h.handler.Handle(ctx, record); err != nil {
			return err
		}
	}

	if record.Level >= h.minLevel && h.notifier != nil {
		h.mu.Lock()
		defer h.mu.Unlock()

		var msg string
		if h.group != "" {
			msg = fmt.Sprintf("*%s* `%s.%s`", record.Level.String(), h.group, record.Message)
		} else {
			msg = fmt.Sprintf("*%s* `%s`", record.Level.String(), record.Message)
		}

		for _, attr := range h.attrs {
			if attr.Key == "error" {
				msg += fmt.Sprintf("\n%s: ```error %v ```", attr.Key, attr.Value)
			} else {
				msg += sanitize(fmt.Sprintf("\n%s: %v", attr.Key, attr.Value))
			}
		}
		record.Attrs(func(attr slog.Attr) bool {
			msg += sanitize(fmt.Sprintf("\n%s: %v", attr.Key, attr.Value))
			return true
		})

		h.notifier.Notify(msg)
	}

	return nil
}

// WithAttrs implements slog.Handler.WithAttrs
func (h *TelegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &TelegramHandler{
		handler:  h.handler.WithAttrs(attrs),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    newAttrs,
		group:    h.group,
	}
}

// WithGroup implements slog.Handler.WithGroup
func (h *TelegramHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &TelegramHandler{
		handler:  h.handler.WithGroup(name),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    h.attrs,
		group:    group,
	}
}

// sanitize escapes Markdown reserved characters before sending.
func sanitize(input string) string {
	const reserved = "\\_{}#+-.!|()[]=*"
	var b strings.Builder
	for _, char := range input {
		if strings.ContainsRune(reserved, char) {
			b.WriteByte('\\')
		}
		b.WriteRune(char)
	}
	return b.String()
}
