package domain

import (
	"time"

	"github.com/google/uuid"
)

// LowStockThreshold is the quantity below which an item counts as low stock.
const LowStockThreshold = 10

type Item struct {
	ID          uuid.UUID `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	OwnerID     uuid.UUID `db:"owner_id"`
	Name        string    `db:"name"`
	Quantity    int       `db:"quantity"`
	Description *string   `db:"description"`
}

func (i *Item) OutOfStock() bool {
	return i.Quantity == 0
}

func (i *Item) LowStock() bool {
	return i.Quantity > 0 && i.Quantity < LowStockThreshold
}

func (i *Item) InStock() bool {
	return i.Quantity >= LowStockThreshold
}

// DescriptionOrDefault returns the description text, or fallback when the
// item has none.
func (i *Item) DescriptionOrDefault(fallback string) string {
	if i.Description == nil || *i.Description == "" {
		return fallback
	}
	return *i.Description
}
