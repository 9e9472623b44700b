package services

import (
	"github.com/google/uuid"

	"stockroom/internal/domain"
)

// ItemStore is the persistence collaborator both the inventory and report
// services operate over. *repository.ItemRepository satisfies it. FindByOwner
// and FindByOwnerMatching return items in a fixed order (by id).
type ItemStore interface {
	FindByOwner(ownerID uuid.UUID) ([]*domain.Item, error)
	FindByID(id uuid.UUID) (*domain.Item, error)
	Insert(item *domain.Item) error
	Save(item *domain.Item) error
	Delete(id uuid.UUID) error
	FindByOwnerMatching(ownerID uuid.UUID, query string) ([]*domain.Item, error)
}

// UserStore is the account collaborator consumed by the auth service.
type UserStore interface {
	Create(user *domain.User) error
	FindByUsername(username string) (*domain.User, error)
}
