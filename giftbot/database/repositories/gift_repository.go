package repositories

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

var ErrGiftNotFound = errors.New("gift not found")

const giftIDLength = 8

type GiftRepository interface {
	Create(ctx context.Context, creatorID int64, creatorLabel, link, title string) (string, error)
	GetByID(ctx context.Context, giftID string) (*models.Gift, error)
}

type giftRepository struct {
	db    *bun.DB
	cache *lru.Cache
}

func NewGiftRepository(db *bun.DB) GiftRepository {
	// Gift records are immutable, so a read cache never goes stale.
	cache, _ := lru.New(256)
	return &giftRepository{
		db:    db,
		cache: cache,
	}
}

func (r *giftRepository) Create(ctx context.Context, creatorID int64, creatorLabel, link, title string) (string, error) {
	gift := &models.Gift{
		GiftID:       newGiftID(),
		CreatorID:    creatorID,
		CreatorLabel: creatorLabel,
		ItemLink:     link,
		ItemTitle:    title,
		CreatedAt:    time.Now(),
	}

	// Plain insert: an id collision violates the primary key and
	// surfaces as an error instead of overwriting an existing record.
	if _, err := r.db.NewInsert().Model(gift).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to create gift: %w", err)
	}

	r.cache.Add(gift.GiftID, gift)
	return gift.GiftID, nil
}

func (r *giftRepository) GetByID(ctx context.Context, giftID string) (*models.Gift, error) {
	if cached, ok := r.cache.Get(giftID); ok {
		return cached.(*models.Gift), nil
	}

	gift := new(models.Gift)
	err := r.db.NewSelect().
		Model(gift).
		Where("gift_id = ?", giftID).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gift: %w", err)
	}

	r.cache.Add(giftID, gift)
	return gift, nil
}

func newGiftID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:giftIDLength]
}
