package handlers

import (
	"context"
	"errors"
	"fmt"

	"log/slog"

	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/prilive-com/galigo/tg"
)

func (r *Router) handleInlineQuery(ctx context.Context, query *tg.InlineQuery) {
	if query.From == nil {
		return
	}

	ticket, err := r.service.CreateFromQuery(ctx, query.From.ID, userLabel(query.From), query.Query)
	if errors.Is(err, gifts.ErrNotGiftLink) {
		// Deliberate "not applicable": empty answer, nothing persisted,
		// nothing logged as an error.
		if err := r.gw.AnswerInlineQuery(ctx, query.ID, nil, 1); err != nil {
			logHandlerError("Failed to answer inline query", err)
		}
		return
	}
	if err != nil {
		logHandlerError("Gift creation failed", err,
			slog.Int64("creator_id", query.From.ID))
		r.answerCreationFailure(ctx, query.ID)
		return
	}

	deepLink := fmt.Sprintf("https://t.me/%s?start=%s", r.cfg.BotUsername, ticket.ClaimPayload())

	// The leading invisible anchor pulls the item preview into the chat.
	messageText := fmt.Sprintf(
		"<a href=\"%s\">&#8205;</a>"+
			"🎁 <b>You have been sent an NFT:</b> <a href=\"%s\">%s</a>\n\n"+
			"<b>It is now in your \"my gifts\" section and available for withdrawal ✅</b>\n\n"+
			"<i>Note that the gift can only be withdrawn from the account it was sent to.</i>\n\n"+
			"Press the button below to open the market.",
		ticket.Link, ticket.Link, ticket.Title,
	)

	result := tg.InlineQueryResultArticle{
		Type:        "article",
		ID:          ticket.GiftID,
		Title:       fmt.Sprintf("🎁 NFT: %s", ticket.Name),
		Description: "Create an NFT gift",
		InputMessageContent: tg.InputTextMessageContent{
			MessageText: messageText,
			ParseMode:   tg.ParseModeHTML.String(),
		},
		ReplyMarkup: tg.InlineKeyboard(
			tg.Row(tg.BtnURL("🎁 Claim NFT", deepLink)),
		),
	}

	if err := r.gw.AnswerInlineQuery(ctx, query.ID, []tg.InlineQueryResult{result}, 0); err != nil {
		logHandlerError("Failed to answer inline query", err,
			slog.String("gift_id", ticket.GiftID))
	}
}

// answerCreationFailure sends the single fallback error article; a
// creation failure must never escape as an unhandled fault.
func (r *Router) answerCreationFailure(ctx context.Context, queryID string) {
	result := tg.InlineQueryResultArticle{
		Type:        "article",
		ID:          "error",
		Title:       "❌ Error",
		Description: "Could not create the NFT gift",
		InputMessageContent: tg.InputTextMessageContent{
			MessageText: "❌ Could not create the NFT gift, please try again later.",
		},
	}

	if err := r.gw.AnswerInlineQuery(ctx, queryID, []tg.InlineQueryResult{result}, 1); err != nil {
		logHandlerError("Failed to answer inline query", err)
	}
}
