package handlers

import (
	"context"

	"github.com/prilive-com/galigo"
	"github.com/prilive-com/galigo/sender"
	"github.com/prilive-com/galigo/tg"
)

// Gateway is the slice of the Telegram client the handlers actually
// use. Tests substitute a fake; production wraps *galigo.Bot.
type Gateway interface {
	SendMessage(ctx context.Context, chatID tg.ChatID, text string, opts ...galigo.SendOption) (*tg.Message, error)
	SendPhoto(ctx context.Context, chatID tg.ChatID, photo string, opts ...galigo.PhotoOption) (*tg.Message, error)
	Edit(ctx context.Context, e tg.Editable, text string, opts ...sender.EditOption) (*tg.Message, error)
	Acknowledge(ctx context.Context, cb *tg.CallbackQuery) error
	AnswerInlineQuery(ctx context.Context, queryID string, results []tg.InlineQueryResult, cacheTime int) error
}

type telegramGateway struct {
	*galigo.Bot
}

func NewGateway(bot *galigo.Bot) Gateway {
	return &telegramGateway{Bot: bot}
}

func (g *telegramGateway) AnswerInlineQuery(ctx context.Context, queryID string, results []tg.InlineQueryResult, cacheTime int) error {
	if len(results) == 0 {
		// The sender rejects empty result sets; leaving the query
		// unanswered renders as "no results" on the client, which is
		// the intended outcome for non-matching creation payloads.
		return nil
	}
	return g.Sender().AnswerInlineQuery(ctx, sender.AnswerInlineQueryRequest{
		InlineQueryID: queryID,
		Results:       results,
		CacheTime:     cacheTime,
	})
}
