package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"stockroom/internal/domain"
	r "stockroom/internal/redis"
	"stockroom/internal/repository"
)

type CreateItemInput struct {
	Name        string
	Quantity    *int
	Description *string
}

// UpdateItemInput is an allow-list patch: only name, quantity and description
// are mutable, and only when the field is present. Owner, id and timestamps
// are not representable here, so they can never be changed through an update.
type UpdateItemInput struct {
	Name        *string
	Quantity    *int
	Description *string
}

type BulkQuantityUpdate struct {
	ItemID   string
	Quantity *int
}

type BulkUpdateResult struct {
	ItemID  string `json:"itemId"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type InventoryService struct {
	store      ItemStore
	statsCache *r.JSONCache[domain.InventoryStats]
}

func NewInventoryService(store ItemStore, statsCache *r.JSONCache[domain.InventoryStats]) *InventoryService {
	return &InventoryService{
		store:      store,
		statsCache: statsCache,
	}
}

func (s *InventoryService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	return s.store.FindByOwner(userID)
}

// GetByID checks existence before ownership: a missing item is ErrItemNotFound,
// an item owned by someone else is ErrNotOwner.
func (s *InventoryService) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.Item, error) {
	item, err := s.store.FindByID(itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if item.OwnerID != userID {
		return nil, ErrNotOwner
	}

	return item, nil
}

func (s *InventoryService) Create(ctx context.Context, userID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	if strings.TrimSpace(input.Name) == "" || input.Quantity == nil {
		return nil, fmt.Errorf("%w: name and quantity are required", ErrInvalidInput)
	}
	if *input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}

	item := &domain.Item{
		OwnerID:     userID,
		Name:        input.Name,
		Quantity:    *input.Quantity,
		Description: input.Description,
	}

	if err := s.store.Insert(item); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)

	return item, nil
}

// Update merges the supplied fields into the stored item. Validation and the
// ownership check both happen before anything is written.
func (s *InventoryService) Update(ctx context.Context, userID, itemID uuid.UUID, patch UpdateItemInput) (*domain.Item, error) {
	item, err := s.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		item.Description = patch.Description
	}

	if err := s.store.Save(item); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)

	return item, nil
}

func (s *InventoryService) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, itemID); err != nil {
		return err
	}

	if err := s.store.Delete(itemID); err != nil {
		return err
	}

	s.invalidateStats(ctx, userID)

	return nil
}

// BulkUpdateQuantity processes the updates independently and in input order.
// A bad entry yields a failed result but never aborts the batch; only a store
// failure fails the call itself.
func (s *InventoryService) BulkUpdateQuantity(ctx context.Context, userID uuid.UUID, updates []BulkQuantityUpdate) ([]BulkUpdateResult, error) {
	results := make([]BulkUpdateResult, 0, len(updates))
	changed := false

	for _, update := range updates {
		itemID, err := uuid.Parse(update.ItemID)
		if err != nil {
			results = append(results, BulkUpdateResult{ItemID: update.ItemID, Message: "invalid item id"})
			continue
		}

		if update.Quantity == nil {
			results = append(results, BulkUpdateResult{ItemID: update.ItemID, Message: "quantity is required"})
			continue
		}
		if *update.Quantity < 0 {
			results = append(results, BulkUpdateResult{ItemID: update.ItemID, Message: "quantity cannot be negative"})
			continue
		}

		item, err := s.store.FindByID(itemID)
		if err != nil && !errors.Is(err, repository.ErrItemNotFound) {
			return nil, err
		}
		if err != nil || item.OwnerID != userID {
			results = append(results, BulkUpdateResult{ItemID: update.ItemID, Message: "item not found or not authorized"})
			continue
		}

		item.Quantity = *update.Quantity
		if err := s.store.Save(item); err != nil {
			return nil, err
		}

		changed = true
		results = append(results, BulkUpdateResult{ItemID: update.ItemID, Success: true, Message: "updated"})
	}

	if changed {
		s.invalidateStats(ctx, userID)
	}

	return results, nil
}

// LowStockItems returns the user's items with quantity below threshold.
// A non-positive threshold falls back to the low stock default.
func (s *InventoryService) LowStockItems(ctx context.Context, userID uuid.UUID, threshold int) ([]*domain.Item, error) {
	if threshold <= 0 {
		threshold = domain.LowStockThreshold
	}

	items, err := s.store.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	low := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		if item.Quantity < threshold {
			low = append(low, item)
		}
	}

	return low, nil
}

func (s *InventoryService) invalidateStats(ctx context.Context, userID uuid.UUID) {
	_ = s.statsCache.Delete(ctx, userID.String())
}
