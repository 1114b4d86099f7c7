package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserInventory is the per-user parent row, created lazily on the first
// successful claim and only ever touched to bump updated_at.
type UserInventory struct {
	bun.BaseModel `bun:"table:user_inventories,alias:ui"`

	UserID    int64     `bun:"user_id,pk"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// InventoryItem is one claimed gift in a user's inventory. The
// (user_id, link) unique constraint is what makes claims at-most-once;
// insertion order (id) is claim order.
type InventoryItem struct {
	bun.BaseModel `bun:"table:inventory_items,alias:ii"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull,unique:inventory_items_user_link"`
	Link       string    `bun:"link,notnull,unique:inventory_items_user_link"`
	Title      string    `bun:"title,notnull"`
	ReceivedAt time.Time `bun:"received_at,notnull"`
}
