package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/giftswift/giftbot/giftbot/database/repositories"
	"github.com/giftswift/giftbot/giftbot/database/repositories/mock"
	"github.com/giftswift/giftbot/giftbot/gifts"
	"github.com/prilive-com/galigo"
	"github.com/prilive-com/galigo/sender"
	"github.com/prilive-com/galigo/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"go.uber.org/mock/gomock"
)

const testLinkPrefix = "https://t.me/nft/"

type sentMessage struct {
	chatID tg.ChatID
	text   string
}

type inlineAnswer struct {
	queryID   string
	results   []tg.InlineQueryResult
	cacheTime int
}

// fakeGateway records every outbound call so tests can assert on what
// the handlers would have sent. Setting sendErr makes SendMessage fail
// for failChatID, leaving other chats working.
type fakeGateway struct {
	mu       sync.Mutex
	messages []sentMessage
	photos   []sentMessage
	edits    []string
	acked    []string
	answers  []inlineAnswer

	failChatID tg.ChatID
	sendErr    error
}

func (g *fakeGateway) SendMessage(_ context.Context, chatID tg.ChatID, text string, _ ...galigo.SendOption) (*tg.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sendErr != nil && chatID == g.failChatID {
		return nil, g.sendErr
	}
	g.messages = append(g.messages, sentMessage{chatID: chatID, text: text})
	return &tg.Message{}, nil
}

func (g *fakeGateway) SendPhoto(_ context.Context, chatID tg.ChatID, photo string, _ ...galigo.PhotoOption) (*tg.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.photos = append(g.photos, sentMessage{chatID: chatID, text: photo})
	return &tg.Message{}, nil
}

func (g *fakeGateway) Edit(_ context.Context, _ tg.Editable, text string, _ ...sender.EditOption) (*tg.Message, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edits = append(g.edits, text)
	return &tg.Message{}, nil
}

func (g *fakeGateway) Acknowledge(_ context.Context, cb *tg.CallbackQuery) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.acked = append(g.acked, cb.ID)
	return nil
}

func (g *fakeGateway) AnswerInlineQuery(_ context.Context, queryID string, results []tg.InlineQueryResult, cacheTime int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.answers = append(g.answers, inlineAnswer{queryID: queryID, results: results, cacheTime: cacheTime})
	return nil
}

// newTestRouter wires a Router over the fake gateway and a real gift
// service backed by in-memory SQLite.
func newTestRouter(t *testing.T, cfg Config) (*Router, *fakeGateway, *gifts.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, model := range []any{
		(*models.Gift)(nil),
		(*models.UserInventory)(nil),
		(*models.InventoryItem)(nil),
	} {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx)
		require.NoError(t, err)
	}

	service := gifts.NewService(
		repositories.NewGiftRepository(db),
		repositories.NewInventoryRepository(db),
		testLinkPrefix,
	)

	gw := &fakeGateway{}
	if cfg.BotUsername == "" {
		cfg.BotUsername = "giftswift_bot"
	}
	return NewRouter(gw, service, cfg), gw, service
}

func startMessage(userID, chatID int64, payload string) *tg.Message {
	text := "/start"
	if payload != "" {
		text += " " + payload
	}
	return &tg.Message{
		From: &tg.User{ID: userID, Username: "claimer"},
		Chat: &tg.Chat{ID: chatID},
		Text: text,
	}
}

func TestHandleInlineQuery_CreatesGift(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{})
	ctx := context.Background()

	router.handleInlineQuery(ctx, &tg.InlineQuery{
		ID:    "q1",
		From:  &tg.User{ID: 7, Username: "creator"},
		Query: "https://t.me/nft/Phoenix-007",
	})

	require.Len(t, gw.answers, 1)
	answer := gw.answers[0]
	assert.Equal(t, "q1", answer.queryID)
	assert.Equal(t, 0, answer.cacheTime)
	require.Len(t, answer.results, 1)

	article, ok := answer.results[0].(tg.InlineQueryResultArticle)
	require.True(t, ok)
	assert.Equal(t, "🎁 NFT: Phoenix", article.Title)

	content, ok := article.InputMessageContent.(tg.InputTextMessageContent)
	require.True(t, ok)
	assert.Contains(t, content.MessageText, "Phoenix #007")
	assert.Contains(t, content.MessageText, "https://t.me/nft/Phoenix-007")

	deepLink := fmt.Sprintf("https://t.me/giftswift_bot?start=%s%s", gifts.ClaimPrefix, article.ID)
	require.NotNil(t, article.ReplyMarkup)
	require.Len(t, article.ReplyMarkup.InlineKeyboard, 1)
	require.Len(t, article.ReplyMarkup.InlineKeyboard[0], 1)
	assert.Equal(t, deepLink, article.ReplyMarkup.InlineKeyboard[0][0].URL)
}

func TestHandleInlineQuery_NotAGiftLink(t *testing.T) {
	router, gw, service := newTestRouter(t, Config{})
	ctx := context.Background()

	router.handleInlineQuery(ctx, &tg.InlineQuery{
		ID:    "q1",
		From:  &tg.User{ID: 7, Username: "creator"},
		Query: "just some text",
	})

	require.Len(t, gw.answers, 1)
	assert.Empty(t, gw.answers[0].results, "non-matching query must produce an empty answer")

	// Nothing persisted either: a made-up id must not resolve.
	_, err := service.Claim(ctx, 1, "deadbeef")
	assert.ErrorIs(t, err, repositories.ErrGiftNotFound)
}

// A storage failure during creation must come back as the single
// fallback error article, briefly cached, never an unanswered query.
func TestHandleInlineQuery_CreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	giftRepo := mock.NewMockGiftRepository(ctrl)
	invRepo := mock.NewMockInventoryRepository(ctrl)

	giftRepo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	gw := &fakeGateway{}
	service := gifts.NewService(giftRepo, invRepo, testLinkPrefix)
	router := NewRouter(gw, service, Config{BotUsername: "giftswift_bot"})

	router.handleInlineQuery(context.Background(), &tg.InlineQuery{
		ID:    "q1",
		From:  &tg.User{ID: 7, Username: "creator"},
		Query: "https://t.me/nft/Phoenix-007",
	})

	require.Len(t, gw.answers, 1)
	answer := gw.answers[0]
	assert.Equal(t, "q1", answer.queryID)
	assert.Equal(t, 1, answer.cacheTime)
	require.Len(t, answer.results, 1)

	article, ok := answer.results[0].(tg.InlineQueryResultArticle)
	require.True(t, ok)
	assert.Equal(t, "error", article.ID)
	assert.Equal(t, "❌ Error", article.Title)
}

// An unreachable audit chat must not cost the claimer anything: the
// confirmation and the home screen still go out.
func TestHandleClaim_AuditFailureSwallowed(t *testing.T) {
	const auditChatID = int64(-100500)
	router, gw, service := newTestRouter(t, Config{
		AuditChatID:  auditChatID,
		WelcomePhoto: "welcome.jpg",
	})
	gw.failChatID = tg.ChatID(auditChatID)
	gw.sendErr = errors.New("chat not found")
	ctx := context.Background()

	ticket, err := service.CreateFromQuery(ctx, 7, "creator", "https://t.me/nft/Phoenix-007")
	require.NoError(t, err)

	router.handleMessage(ctx, startMessage(42, 42, ticket.ClaimPayload()))

	require.Len(t, gw.messages, 1, "only the confirmation should land")
	assert.Equal(t, tg.ChatID(int64(42)), gw.messages[0].chatID)
	assert.Contains(t, gw.messages[0].text, "You received a gift")
	require.Len(t, gw.photos, 1)
	assert.Equal(t, "welcome.jpg", gw.photos[0].text)

	items, err := service.Inventory(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestHandleClaim_FullFlow(t *testing.T) {
	router, gw, service := newTestRouter(t, Config{WelcomePhoto: "welcome.jpg"})
	ctx := context.Background()

	ticket, err := service.CreateFromQuery(ctx, 7, "creator", "https://t.me/nft/Phoenix-007")
	require.NoError(t, err)

	router.handleMessage(ctx, startMessage(42, 42, ticket.ClaimPayload()))

	require.Len(t, gw.messages, 1)
	assert.Equal(t, tg.ChatID(int64(42)), gw.messages[0].chatID)
	assert.Contains(t, gw.messages[0].text, "You received a gift")
	assert.Contains(t, gw.messages[0].text, "Phoenix")

	// The home screen follows the confirmation.
	require.Len(t, gw.photos, 1)
	assert.Equal(t, "welcome.jpg", gw.photos[0].text)

	items, err := service.Inventory(ctx, 42)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Phoenix #007", items[0].Title)
}

func TestHandleClaim_AlreadyClaimed(t *testing.T) {
	router, gw, service := newTestRouter(t, Config{})
	ctx := context.Background()

	ticket, err := service.CreateFromQuery(ctx, 7, "creator", "https://t.me/nft/Phoenix-007")
	require.NoError(t, err)

	router.handleMessage(ctx, startMessage(42, 42, ticket.ClaimPayload()))
	router.handleMessage(ctx, startMessage(42, 42, ticket.ClaimPayload()))

	var rejections int
	for _, m := range gw.messages {
		if strings.Contains(m.text, "already claimed") {
			rejections++
		}
	}
	assert.Equal(t, 1, rejections, "second claim must be rejected exactly once")

	items, err := service.Inventory(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestHandleClaim_UnknownGift(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{})

	router.handleMessage(context.Background(), startMessage(42, 42, "claim_nft_deadbeef"))

	require.Len(t, gw.messages, 1)
	assert.Equal(t, "❌ Gift not found.", gw.messages[0].text)
	assert.Empty(t, gw.photos, "a failed claim must not render the home screen")
}

func TestHandleMessage_PlainStartRendersHome(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{WelcomePhoto: "welcome.jpg"})

	router.handleMessage(context.Background(), startMessage(42, 42, ""))

	assert.Empty(t, gw.messages)
	require.Len(t, gw.photos, 1)
	assert.Equal(t, "welcome.jpg", gw.photos[0].text)
}

func TestHandleMessage_StartWithBotMention(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{WelcomePhoto: "welcome.jpg"})

	router.handleMessage(context.Background(), &tg.Message{
		From: &tg.User{ID: 42},
		Chat: &tg.Chat{ID: 42},
		Text: "/start@giftswift_bot",
	})

	require.Len(t, gw.photos, 1)
}

func TestHandleMessage_IgnoresOtherCommands(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{})

	router.handleMessage(context.Background(), &tg.Message{
		From: &tg.User{ID: 42},
		Chat: &tg.Chat{ID: 42},
		Text: "/help",
	})

	assert.Empty(t, gw.messages)
	assert.Empty(t, gw.photos)
}

func TestNotifyAudit(t *testing.T) {
	tests := []struct {
		name        string
		auditChatID int64
		claimerID   int64
		noUsername  bool
		wantNotice  bool
	}{
		{
			name:        "claim by another user is reported",
			auditChatID: -100500,
			claimerID:   42,
			wantNotice:  true,
		},
		{
			name:        "self-claim is skipped",
			auditChatID: -100500,
			claimerID:   7,
			wantNotice:  false,
		},
		{
			name:        "username-less claimer gets the numeric label",
			auditChatID: -100500,
			claimerID:   42,
			noUsername:  true,
			wantNotice:  true,
		},
		{
			name:       "disabled without an audit chat",
			claimerID:  42,
			wantNotice: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, gw, _ := newTestRouter(t, Config{AuditChatID: tt.auditChatID})

			gift := &models.Gift{
				GiftID:       "abc123",
				CreatorID:    7,
				CreatorLabel: "@creator",
			}
			claimer := &tg.User{ID: tt.claimerID, Username: "claimer"}
			if tt.noUsername {
				claimer.Username = ""
			}
			router.notifyAudit(context.Background(), gift, claimer)

			if !tt.wantNotice {
				assert.Empty(t, gw.messages)
				return
			}
			require.Len(t, gw.messages, 1)
			assert.Equal(t, tg.ChatID(tt.auditChatID), gw.messages[0].chatID)
			wantText := "@claimer claimed a gift shared by @creator"
			if tt.noUsername {
				wantText = "user:42 claimed a gift shared by @creator"
			}
			assert.Equal(t, wantText, gw.messages[0].text)
		})
	}
}

func TestHandleCallback_MyGifts(t *testing.T) {
	router, gw, service := newTestRouter(t, Config{})
	ctx := context.Background()

	for _, q := range []string{"https://t.me/nft/Phoenix-001", "https://t.me/nft/Phoenix-002"} {
		ticket, err := service.CreateFromQuery(ctx, 7, "creator", q)
		require.NoError(t, err)
		_, err = service.Claim(ctx, 42, ticket.GiftID)
		require.NoError(t, err)
	}

	cb := &tg.CallbackQuery{
		ID:      "cb1",
		From:    &tg.User{ID: 42},
		Data:    CallbackMyGifts,
		Message: &tg.Message{Chat: &tg.Chat{ID: 42}},
	}
	router.handleCallback(ctx, cb)

	assert.Equal(t, []string{"cb1"}, gw.acked)
	require.Len(t, gw.edits, 1)
	assert.Contains(t, gw.edits[0], "My gifts")
	assert.Contains(t, gw.edits[0], "1. ")
	assert.Contains(t, gw.edits[0], "Phoenix #001")
	assert.Contains(t, gw.edits[0], "Phoenix #002")
}

func TestHandleCallback_EmptyInventory(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{})

	cb := &tg.CallbackQuery{
		ID:      "cb1",
		From:    &tg.User{ID: 42},
		Data:    CallbackMyGifts,
		Message: &tg.Message{Chat: &tg.Chat{ID: 42}},
	}
	router.handleCallback(context.Background(), cb)

	require.Len(t, gw.edits, 1)
	assert.Contains(t, gw.edits[0], "no gifts yet")
}

func TestHandleCallback_IgnoresUnknownData(t *testing.T) {
	router, gw, _ := newTestRouter(t, Config{})

	router.handleCallback(context.Background(), &tg.CallbackQuery{
		ID:   "cb1",
		From: &tg.User{ID: 42},
		Data: "something_else",
	})

	assert.Empty(t, gw.acked)
	assert.Empty(t, gw.edits)
}
