package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
)

// memStore is an in-memory ItemStore used by the service tests. It hands out
// copies, like a real store would, and can be forced to fail to exercise the
// store-unavailable paths.
type memStore struct {
	items map[uuid.UUID]*domain.Item
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[uuid.UUID]*domain.Item)}
}

func (m *memStore) put(owner uuid.UUID, name string, quantity int, description *string) *domain.Item {
	item := &domain.Item{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
		OwnerID:     owner,
		Name:        name,
		Quantity:    quantity,
		Description: description,
	}
	m.items[item.ID] = item
	return copyItem(item)
}

func (m *memStore) FindByOwner(ownerID uuid.UUID) ([]*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}

	items := []*domain.Item{}
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			items = append(items, copyItem(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID.String() < items[j].ID.String()
	})
	return items, nil
}

func (m *memStore) FindByID(id uuid.UUID) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}

	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return copyItem(item), nil
}

func (m *memStore) Insert(item *domain.Item) error {
	if m.err != nil {
		return m.err
	}

	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	m.items[item.ID] = copyItem(item)
	return nil
}

func (m *memStore) Save(item *domain.Item) error {
	if m.err != nil {
		return m.err
	}

	if _, ok := m.items[item.ID]; !ok {
		return repository.ErrItemNotFound
	}
	item.UpdatedAt = time.Now().UTC()
	m.items[item.ID] = copyItem(item)
	return nil
}

func (m *memStore) Delete(id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}

	delete(m.items, id)
	return nil
}

func (m *memStore) FindByOwnerMatching(ownerID uuid.UUID, query string) ([]*domain.Item, error) {
	items, err := m.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := []*domain.Item{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matched = append(matched, item)
			continue
		}
		if item.Description != nil && strings.Contains(strings.ToLower(*item.Description), needle) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func copyItem(item *domain.Item) *domain.Item {
	out := *item
	if item.Description != nil {
		desc := *item.Description
		out.Description = &desc
	}
	return &out
}

// memUserStore backs the auth service tests.
type memUserStore struct {
	users map[string]*domain.User
	err   error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*domain.User)}
}

func (m *memUserStore) Create(user *domain.User) error {
	if m.err != nil {
		return m.err
	}

	if _, ok := m.users[user.Username]; ok {
		return repository.ErrUserExists
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *memUserStore) FindByUsername(username string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}

	user, ok := m.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := *user
	return &out, nil
}
