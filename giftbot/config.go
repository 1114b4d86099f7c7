package giftbot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/giftswift/giftbot/giftbot/database"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log LogConfig         `toml:"log"`
	Bot BotConfig         `toml:"bot"`
	DB  database.DBConfig `toml:"db"`
}

type BotConfig struct {
	Token        string `toml:"token"`
	LinkPrefix   string `toml:"link_prefix"`
	MarketURL    string `toml:"market_url"`
	ChannelURL   string `toml:"channel_url"`
	AuditChatID  int64  `toml:"audit_chat_id"`
	WelcomePhoto string `toml:"welcome_photo"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// DefaultLinkPrefix is the item reference prefix accepted by gift
// creation when the config leaves link_prefix empty.
const DefaultLinkPrefix = "https://t.me/nft/"

func (c BotConfig) ItemLinkPrefix() string {
	if c.LinkPrefix != "" {
		return c.LinkPrefix
	}
	return DefaultLinkPrefix
}
