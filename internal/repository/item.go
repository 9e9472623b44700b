package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stockroom/internal/domain"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// FindByOwner returns every item belonging to ownerID ordered by id, so
// aggregations over the result are deterministic.
func (r *ItemRepository) FindByOwner(ownerID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT id, created_at, updated_at, owner_id, name, quantity, description
		FROM items
		WHERE owner_id = $1
		ORDER BY id
	`

	items := []*domain.Item{}
	if err := r.db.Select(&items, query, ownerID); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) FindByID(id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT id, created_at, updated_at, owner_id, name, quantity, description
		FROM items
		WHERE id = $1
	`

	item := &domain.Item{}
	err := r.db.Get(item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *ItemRepository) Insert(item *domain.Item) error {
	query := `
		INSERT INTO items (owner_id, name, quantity, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(query, item.OwnerID, item.Name, item.Quantity, item.Description).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// Save persists the mutable fields of an existing item in a single UPDATE,
// so a concurrent reader never observes a half-applied write.
func (r *ItemRepository) Save(item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $1, quantity = $2, description = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(query, item.Name, item.Quantity, item.Description, item.ID).
		Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (r *ItemRepository) Delete(id uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM items WHERE id = $1`, id)
	return err
}

// FindByOwnerMatching returns the owner's items whose name or description
// contains the query, case-insensitively.
func (r *ItemRepository) FindByOwnerMatching(ownerID uuid.UUID, query string) ([]*domain.Item, error) {
	stmt := `
		SELECT id, created_at, updated_at, owner_id, name, quantity, description
		FROM items
		WHERE owner_id = $1
			AND (name ILIKE $2 OR description ILIKE $2)
		ORDER BY id
	`

	items := []*domain.Item{}
	if err := r.db.Select(&items, stmt, ownerID, "%"+query+"%"); err != nil {
		return nil, err
	}

	return items, nil
}

type StockCounts struct {
	TotalItems int `db:"total_items"`
	OutOfStock int `db:"out_of_stock"`
	LowStock   int `db:"low_stock"`
}

// GlobalStockCounts aggregates stock bands across all owners. Used by the
// stock monitor worker to refresh gauges.
func (r *ItemRepository) GlobalStockCounts() (*StockCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total_items,
			COUNT(*) FILTER (WHERE quantity = 0) AS out_of_stock,
			COUNT(*) FILTER (WHERE quantity > 0 AND quantity < $1) AS low_stock
		FROM items
	`

	counts := &StockCounts{}
	if err := r.db.Get(counts, query, domain.LowStockThreshold); err != nil {
		return nil, err
	}

	return counts, nil
}

type OwnerStockAlert struct {
	OwnerID    uuid.UUID `db:"owner_id"`
	OutOfStock int       `db:"out_of_stock"`
	LowStock   int       `db:"low_stock"`
}

// StockAlertsByOwner returns, per owner, how many of their items are out of
// stock or low on stock, skipping owners with nothing to report.
func (r *ItemRepository) StockAlertsByOwner() ([]OwnerStockAlert, error) {
	query := `
		SELECT
			owner_id,
			COUNT(*) FILTER (WHERE quantity = 0) AS out_of_stock,
			COUNT(*) FILTER (WHERE quantity > 0 AND quantity < $1) AS low_stock
		FROM items
		GROUP BY owner_id
		HAVING COUNT(*) FILTER (WHERE quantity < $1) > 0
	`

	alerts := []OwnerStockAlert{}
	if err := r.db.Select(&alerts, query, domain.LowStockThreshold); err != nil {
		return nil, err
	}

	return alerts, nil
}
