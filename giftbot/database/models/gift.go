package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Gift is an append-only record of a minted gift. Rows are never
// updated or deleted once inserted.
type Gift struct {
	bun.BaseModel `bun:"table:gift_records,alias:g"`

	GiftID       string    `bun:"gift_id,pk"`
	CreatorID    int64     `bun:"creator_id,notnull"`
	CreatorLabel string    `bun:"creator_label,notnull"`
	ItemLink     string    `bun:"item_link,notnull"`
	ItemTitle    string    `bun:"item_title,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
