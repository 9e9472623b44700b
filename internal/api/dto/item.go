package dto

import (
	"time"

	"stockroom/internal/domain"
)

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description,omitempty"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ItemFromDomain(item *domain.Item) *Item {
	if item == nil {
		return nil
	}

	return &Item{
		ID:          item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		Description: item.Description,
		OwnerID:     item.OwnerID.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func ItemsFromDomain(items []*domain.Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		out = append(out, ItemFromDomain(item))
	}
	return out
}

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description"`
}

// UpdateItemRequest carries a partial patch. Fields absent from the request
// body stay nil and are left untouched; unknown fields (owner included) are
// discarded at bind time.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description"`
}

type BulkQuantityEntry struct {
	ItemID   string `json:"itemId"`
	Quantity *int   `json:"quantity"`
}

type BulkUpdateQuantityRequest struct {
	Updates []BulkQuantityEntry `json:"updates"`
}

type SearchResult struct {
	Items []*Item `json:"items"`
	Count int     `json:"count"`
}
