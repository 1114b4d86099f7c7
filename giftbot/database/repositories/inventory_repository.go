package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/uptrace/bun"
)

type InventoryRepository interface {
	Claim(ctx context.Context, userID int64, link, title string) (bool, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.InventoryItem, error)
}

type inventoryRepository struct {
	db *bun.DB
}

func NewInventoryRepository(db *bun.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

// Claim appends link to the user's inventory unless it is already
// there. The (user_id, link) unique constraint makes the insert
// conditional, so concurrent claims of the same pair resolve to
// exactly one added=true without any read-check-write window.
func (r *inventoryRepository) Claim(ctx context.Context, userID int64, link, title string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	now := time.Now()
	item := &models.InventoryItem{
		UserID:     userID,
		Link:       link,
		Title:      title,
		ReceivedAt: now,
	}

	result, err := tx.NewInsert().
		Model(item).
		On("CONFLICT (user_id, link) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to insert inventory item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rowsAffected == 0 {
		// Already claimed: no mutation, not even updated_at.
		return false, tx.Commit()
	}

	inventory := &models.UserInventory{
		UserID:    userID,
		UpdatedAt: now,
	}

	_, err = tx.NewInsert().
		Model(inventory).
		On("CONFLICT (user_id) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to upsert inventory: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *inventoryRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.InventoryItem, error) {
	items := make([]*models.InventoryItem, 0)
	err := r.db.NewSelect().
		Model(&items).
		Where("user_id = ?", userID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}
