package giftbot

import (
	"context"
	"log/slog"

	"github.com/giftswift/giftbot/giftbot/database"
	"github.com/giftswift/giftbot/giftbot/database/repositories"
	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/prilive-com/galigo"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:     cfg,
		Version: version,
		Commit:  commit,
	}
}

type Bot struct {
	Cfg                 Config
	Client              *galigo.Bot
	Version             string
	Commit              string
	Username            string
	DB                  *database.DB
	GiftRepository      repositories.GiftRepository
	InventoryRepository repositories.InventoryRepository
	GiftService         *gifts.Service
}

// SetupBot creates the Telegram client in long-polling mode. The
// update channel is drained by the handlers router, not here.
func (b *Bot) SetupBot() error {
	client, err := galigo.New(b.Cfg.Bot.Token,
		galigo.WithPolling(30, 100),
		galigo.WithRetries(3),
		galigo.WithPollingMaxErrors(5),
		galigo.WithDeleteWebhook(true),
		galigo.WithAllowedUpdates("message", "inline_query", "callback_query"),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// Connect resolves the bot's own username, which deep links embed, and
// starts the polling receiver.
func (b *Bot) Connect(ctx context.Context) error {
	me, err := b.Client.Sender().GetMe(ctx)
	if err != nil {
		return err
	}
	b.Username = me.Username

	if err := b.Client.Start(ctx); err != nil {
		return err
	}

	slog.Info("GiftSwift bot is now ready",
		slog.String("username", b.Username),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))
	return nil
}

func (b *Bot) Close() {
	if b.Client != nil {
		if err := b.Client.Close(); err != nil {
			slog.Error("Failed to close telegram client", slog.Any("error", err))
		}
	}
	if b.DB != nil {
		b.DB.Close()
	}
}
