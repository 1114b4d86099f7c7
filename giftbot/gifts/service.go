package gifts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/giftswift/giftbot/giftbot/database/models"
	"github.com/giftswift/giftbot/giftbot/database/repositories"
)

var (
	// ErrNotGiftLink marks a creation query that is not an item link at
	// all. Callers answer with an empty result, not an error.
	ErrNotGiftLink = errors.New("query is not a gift link")

	// ErrAlreadyClaimed marks a repeat claim of the same link by the
	// same user. The inventory is left untouched.
	ErrAlreadyClaimed = errors.New("gift already claimed")
)

// Ticket describes a freshly minted gift, ready to be embedded in a
// shareable message.
type Ticket struct {
	GiftID string
	Link   string
	Name   string
	Title  string
}

// ClaimPayload is the deep-link start parameter that claims this gift.
func (t *Ticket) ClaimPayload() string {
	return ClaimPrefix + t.GiftID
}

// ClaimResult describes a successful claim.
type ClaimResult struct {
	Gift  *models.Gift
	Name  string
	Title string
}

// Service orchestrates the create -> share -> claim lifecycle on top of
// the gift and inventory repositories.
type Service struct {
	gifts      repositories.GiftRepository
	inventory  repositories.InventoryRepository
	linkPrefix string
}

func NewService(gifts repositories.GiftRepository, inventory repositories.InventoryRepository, linkPrefix string) *Service {
	return &Service{
		gifts:      gifts,
		inventory:  inventory,
		linkPrefix: linkPrefix,
	}
}

// CreateFromQuery validates an inline creation query, persists a new
// gift record and returns its shareable ticket. Queries that do not
// start with the item link prefix yield ErrNotGiftLink.
func (s *Service) CreateFromQuery(ctx context.Context, creatorID int64, creatorLabel, rawQuery string) (*Ticket, error) {
	link := strings.TrimSpace(rawQuery)
	if !strings.HasPrefix(link, s.linkPrefix) {
		return nil, ErrNotGiftLink
	}

	raw := rawTitle(link)
	if raw == "" {
		return nil, ErrNotGiftLink
	}

	giftID, err := s.gifts.Create(ctx, creatorID, creatorLabel, link, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to mint gift: %w", err)
	}

	name, _ := SplitTitle(raw)
	return &Ticket{
		GiftID: giftID,
		Link:   link,
		Name:   name,
		Title:  DisplayTitle(raw),
	}, nil
}

// Claim resolves giftID and adds the item to the user's inventory.
// Unknown ids return repositories.ErrGiftNotFound; repeat claims by the
// same user return ErrAlreadyClaimed with no mutation.
func (s *Service) Claim(ctx context.Context, userID int64, giftID string) (*ClaimResult, error) {
	gift, err := s.gifts.GetByID(ctx, giftID)
	if err != nil {
		return nil, err
	}

	title := DisplayTitle(gift.ItemTitle)
	added, err := s.inventory.Claim(ctx, userID, gift.ItemLink, title)
	if err != nil {
		return nil, fmt.Errorf("failed to claim gift: %w", err)
	}
	if !added {
		return nil, ErrAlreadyClaimed
	}

	name, _ := SplitTitle(gift.ItemTitle)
	return &ClaimResult{
		Gift:  gift,
		Name:  name,
		Title: title,
	}, nil
}

// Inventory lists the user's claimed items in claim order. Users who
// never claimed anything get an empty slice.
func (s *Service) Inventory(ctx context.Context, userID int64) ([]*models.InventoryItem, error) {
	return s.inventory.GetByUserID(ctx, userID)
}
