package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giftswift/giftbot/giftbot"
	"github.com/giftswift/giftbot/giftbot/database"
	"github.com/giftswift/giftbot/giftbot/database/repositories"
	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/giftswift/giftbot/giftbot/handlers"
	"github.com/giftswift/giftbot/giftbot/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting GiftSwift Telegram Bot",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := giftbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	// The pool connects lazily; ping before declaring victory.
	if err := db.Ping(ctx); err != nil {
		slog.Error("Database ping failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	b := giftbot.New(*cfg, version, commit)
	b.DB = db

	b.GiftRepository = repositories.NewGiftRepository(db.BunDB())
	b.InventoryRepository = repositories.NewInventoryRepository(db.BunDB())
	b.GiftService = gifts.NewService(b.GiftRepository, b.InventoryRepository, cfg.Bot.ItemLinkPrefix())

	if err := b.SetupBot(); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Connect(runCtx); err != nil {
		slog.Error("Failed to connect to telegram",
			slog.String("type", "tg"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer b.Close()

	router := handlers.NewRouter(
		handlers.NewGateway(b.Client),
		b.GiftService,
		handlers.Config{
			BotUsername:  b.Username,
			MarketURL:    cfg.Bot.MarketURL,
			ChannelURL:   cfg.Bot.ChannelURL,
			AuditChatID:  cfg.Bot.AuditChatID,
			WelcomePhoto: cfg.Bot.WelcomePhoto,
		},
	)

	slog.Info("Bot is running. Press CTRL-C to exit.")
	if err := router.Run(runCtx, b.Client.Updates()); err != nil {
		slog.Error("Update loop terminated", slog.Any("error", err))
	}
	slog.Info("Shutting down bot...")
}
