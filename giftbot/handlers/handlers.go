package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/prilive-com/galigo/tg"
	"golang.org/x/sync/errgroup"
)

// CallbackMyGifts is the callback data tag of the inventory button.
const CallbackMyGifts = "my_gifts"

const maxConcurrentUpdates = 32

// Config carries the presentation knobs the handlers need beyond the
// gift service itself.
type Config struct {
	BotUsername  string
	MarketURL    string
	ChannelURL   string
	AuditChatID  int64
	WelcomePhoto string
}

// Router fans incoming updates out to handler goroutines. Every update
// is an independent unit of work; failures are recovered here and never
// escape to the polling loop.
type Router struct {
	gw      Gateway
	service *gifts.Service
	cfg     Config
}

func NewRouter(gw Gateway, service *gifts.Service, cfg Config) *Router {
	return &Router{
		gw:      gw,
		service: service,
		cfg:     cfg,
	}
}

// Run consumes updates until ctx is cancelled or the channel closes.
func (r *Router) Run(ctx context.Context, updates <-chan tg.Update) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUpdates)

	for {
		select {
		case <-ctx.Done():
			return g.Wait()
		case update, ok := <-updates:
			if !ok {
				return g.Wait()
			}
			g.Go(func() error {
				r.HandleUpdate(ctx, update)
				return nil
			})
		}
	}
}

func (r *Router) HandleUpdate(ctx context.Context, update tg.Update) {
	switch {
	case update.Message != nil:
		r.handleMessage(ctx, update.Message)
	case update.InlineQuery != nil:
		r.handleInlineQuery(ctx, update.InlineQuery)
	case update.CallbackQuery != nil:
		r.handleCallback(ctx, update.CallbackQuery)
	}
}

// userLabel is the display label stored with and reported about a
// user: an @-mention when the username is set, an unprefixed numeric
// fallback otherwise.
func userLabel(u *tg.User) string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("user:%d", u.ID)
}

func logHandlerError(msg string, err error, attrs ...any) {
	args := append([]any{slog.String("type", "tg"), slog.Any("error", err)}, attrs...)
	slog.Error(msg, args...)
}
