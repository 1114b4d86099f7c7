package handlers

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/prilive-com/galigo/sender"
	"github.com/prilive-com/galigo/tg"
)

func (r *Router) handleCallback(ctx context.Context, cb *tg.CallbackQuery) {
	if cb.From == nil || cb.Data != CallbackMyGifts {
		return
	}

	if err := r.gw.Acknowledge(ctx, cb); err != nil {
		logHandlerError("Failed to acknowledge callback", err)
	}

	items, err := r.service.Inventory(ctx, cb.From.ID)
	if err != nil {
		logHandlerError("Failed to load inventory", err,
			slog.Int64("user_id", cb.From.ID))
		return
	}

	if len(items) == 0 {
		r.editCallbackMessage(ctx, cb, "🎁 <b>You have no gifts yet</b>")
		return
	}

	var b strings.Builder
	b.WriteString("🎁 <b>My gifts:</b>\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. <a href=\"%s\">%s</a>\n", i+1, item.Link, item.Title)
	}

	r.editCallbackMessage(ctx, cb, b.String())
}

func (r *Router) editCallbackMessage(ctx context.Context, cb *tg.CallbackQuery, text string) {
	_, err := r.gw.Edit(ctx, cb, text,
		sender.WithEditParseMode(tg.ParseModeHTML),
		sender.WithDisableWebPreview(true),
	)
	if err != nil {
		logHandlerError("Failed to edit inventory message", err,
			slog.Int64("user_id", cb.From.ID))
	}
}
