package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"log/slog"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/giftswift/giftbot/giftbot/database/repositories"
	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/prilive-com/galigo"
	"github.com/prilive-com/galigo/tg"
)

func (r *Router) handleMessage(ctx context.Context, msg *tg.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/start") {
		return
	}

	fields := strings.Fields(text)
	cmd := strings.SplitN(fields[0], "@", 2)[0]
	if cmd != "/start" {
		return
	}

	if len(fields) > 1 {
		if giftID, ok := gifts.ParseClaimPayload(fields[1]); ok {
			r.handleClaim(ctx, msg, giftID)
			return
		}
	}

	r.renderHome(ctx, msg.Chat.ID)
}

// renderHome sends the welcome photo with the market keyboard. It is
// an independently invocable step, also used after a successful claim.
func (r *Router) renderHome(ctx context.Context, chatID int64) {
	kb := tg.InlineKeyboard(
		tg.Row(tg.BtnWebApp("🛒 Open Market", r.cfg.MarketURL)),
		tg.Row(tg.BtnURL("📢 Our channel", r.cfg.ChannelURL)),
		tg.Row(tg.Btn("🎁 My gifts", CallbackMyGifts)),
	)

	caption := "<b>Welcome to GiftSwift</b>\n\n" +
		"Buy and sell gifts right in Telegram through the Mini App!"

	_, err := r.gw.SendPhoto(ctx, chatID, r.cfg.WelcomePhoto,
		galigo.WithPhotoCaption(caption),
		galigo.WithPhotoParseMode(tg.ParseModeHTML),
		galigo.WithPhotoKeyboard(kb),
	)
	if err != nil {
		logHandlerError("Failed to render home", err, slog.Int64("chat_id", chatID))
	}
}

func (r *Router) handleClaim(ctx context.Context, msg *tg.Message, giftID string) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	result, err := r.service.Claim(ctx, userID, giftID)
	switch {
	case errors.Is(err, repositories.ErrGiftNotFound):
		r.reply(ctx, chatID, "❌ Gift not found.")
		return
	case errors.Is(err, gifts.ErrAlreadyClaimed):
		r.reply(ctx, chatID, "❌ You have already claimed this gift.")
		return
	case err != nil:
		logHandlerError("Claim failed", err,
			slog.Int64("user_id", userID),
			slog.String("gift_id", giftID))
		r.reply(ctx, chatID, "❌ Could not claim the gift, please try again later.")
		return
	}

	text := fmt.Sprintf(
		"🎁 <b>You received a gift: </b><a href=\"%s\">%s</a>\n\n✅ It is now in your inventory",
		result.Gift.ItemLink, result.Name,
	)
	if _, err := r.gw.SendMessage(ctx, chatID, text, galigo.WithParseMode(tg.ParseModeHTML)); err != nil {
		logHandlerError("Failed to send claim confirmation", err, slog.Int64("user_id", userID))
	}

	r.notifyAudit(ctx, result.Gift, msg.From)

	// Explicit second step, not a re-entry into the start handler.
	r.renderHome(ctx, chatID)
}

// notifyAudit reports a claim to the audit channel. Failures are logged
// and swallowed; the claim already succeeded.
func (r *Router) notifyAudit(ctx context.Context, gift *models.Gift, claimer *tg.User) {
	if r.cfg.AuditChatID == 0 || gift.CreatorID == claimer.ID {
		return
	}

	text := fmt.Sprintf("%s claimed a gift shared by %s", userLabel(claimer), gift.CreatorLabel)
	if _, err := r.gw.SendMessage(ctx, r.cfg.AuditChatID, text); err != nil {
		logHandlerError("Failed to notify audit channel", err,
			slog.Int64("creator_id", gift.CreatorID),
			slog.Int64("claimer_id", claimer.ID))
	}
}

func (r *Router) reply(ctx context.Context, chatID int64, text string) {
	if _, err := r.gw.SendMessage(ctx, chatID, text); err != nil {
		logHandlerError("Failed to send reply", err, slog.Int64("chat_id", chatID))
	}
}
