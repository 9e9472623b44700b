package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestInventoryService_List(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	service := NewInventoryService(store, nil)

	owner := uuid.New()
	other := uuid.New()
	store.put(owner, "bolts", 5, nil)
	store.put(owner, "nuts", 3, nil)
	store.put(other, "washers", 7, nil)

	items, err := service.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, owner, item.OwnerID)
	}
}

func TestInventoryService_GetByID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	service := NewInventoryService(store, nil)

	owner := uuid.New()
	stranger := uuid.New()
	item := store.put(owner, "bolts", 5, nil)

	t.Run("owner can read", func(t *testing.T) {
		got, err := service.GetByID(ctx, owner, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "bolts", got.Name)
	})

	t.Run("missing item is not found", func(t *testing.T) {
		_, err := service.GetByID(ctx, owner, uuid.New())
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("existing item of another owner is forbidden, not missing", func(t *testing.T) {
		_, err := service.GetByID(ctx, stranger, item.ID)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.NotErrorIs(t, err, ErrItemNotFound)
	})
}

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("persists with acting user as owner", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)

		item, err := service.Create(ctx, owner, CreateItemInput{
			Name:        "Widget",
			Quantity:    intPtr(4),
			Description: strPtr("standard widget"),
		})
		require.NoError(t, err)
		assert.Equal(t, owner, item.OwnerID)
		assert.Equal(t, 4, item.Quantity)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.False(t, item.CreatedAt.IsZero())

		stored, err := store.FindByID(item.ID)
		require.NoError(t, err)
		assert.Equal(t, owner, stored.OwnerID)
	})

	t.Run("rejects missing name and quantity", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)

		_, err := service.Create(ctx, owner, CreateItemInput{Quantity: intPtr(1)})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = service.Create(ctx, owner, CreateItemInput{Name: "   ", Quantity: intPtr(1)})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = service.Create(ctx, owner, CreateItemInput{Name: "bolts"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		assert.Empty(t, store.items)
	})

	t.Run("rejects negative quantity and persists nothing", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)

		_, err := service.Create(ctx, owner, CreateItemInput{Name: "bolts", Quantity: intPtr(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, store.items)
	})
}

func TestInventoryService_Update(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("merges only the supplied fields", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, strPtr("old"))

		updated, err := service.Update(ctx, owner, item.ID, UpdateItemInput{Quantity: intPtr(9)})
		require.NoError(t, err)
		assert.Equal(t, "bolts", updated.Name)
		assert.Equal(t, 9, updated.Quantity)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "old", *updated.Description)
		assert.Equal(t, owner, updated.OwnerID)
	})

	t.Run("updates name and description when present", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)

		updated, err := service.Update(ctx, owner, item.ID, UpdateItemInput{
			Name:        strPtr("hex bolts"),
			Description: strPtr("M8"),
		})
		require.NoError(t, err)
		assert.Equal(t, "hex bolts", updated.Name)
		assert.Equal(t, 5, updated.Quantity)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "M8", *updated.Description)
	})

	t.Run("rejects negative quantity without writing", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)

		_, err := service.Update(ctx, owner, item.ID, UpdateItemInput{
			Name:     strPtr("changed"),
			Quantity: intPtr(-2),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		stored, err := store.FindByID(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "bolts", stored.Name)
		assert.Equal(t, 5, stored.Quantity)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)

		_, err := service.Update(ctx, owner, item.ID, UpdateItemInput{Name: strPtr("  ")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("checks existence then ownership", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)

		_, err := service.Update(ctx, owner, uuid.New(), UpdateItemInput{Quantity: intPtr(1)})
		assert.ErrorIs(t, err, ErrItemNotFound)

		_, err = service.Update(ctx, uuid.New(), item.ID, UpdateItemInput{Quantity: intPtr(1)})
		assert.ErrorIs(t, err, ErrNotOwner)

		stored, _ := store.FindByID(item.ID)
		assert.Equal(t, 5, stored.Quantity)
	})
}

func TestInventoryService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := newMemStore()
	service := NewInventoryService(store, nil)
	item := store.put(owner, "bolts", 5, nil)

	t.Run("other owners cannot delete", func(t *testing.T) {
		err := service.Delete(ctx, uuid.New(), item.ID)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, owner, item.ID))

		_, err := store.FindByID(item.ID)
		assert.Error(t, err)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := service.Delete(ctx, owner, item.ID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestInventoryService_BulkUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("failing entries do not abort the batch", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		bad := store.put(owner, "bolts", 5, nil)
		good := store.put(owner, "nuts", 1, nil)

		results, err := service.BulkUpdateQuantity(ctx, owner, []BulkQuantityUpdate{
			{ItemID: bad.ID.String(), Quantity: intPtr(-5)},
			{ItemID: good.ID.String(), Quantity: intPtr(3)},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, bad.ID.String(), results[0].ItemID)
		assert.False(t, results[0].Success)
		assert.Equal(t, "quantity cannot be negative", results[0].Message)

		assert.Equal(t, good.ID.String(), results[1].ItemID)
		assert.True(t, results[1].Success)

		stored, _ := store.FindByID(good.ID)
		assert.Equal(t, 3, stored.Quantity)
		stored, _ = store.FindByID(bad.ID)
		assert.Equal(t, 5, stored.Quantity)
	})

	t.Run("foreign and missing items fail per entry", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		foreign := store.put(uuid.New(), "bolts", 5, nil)

		results, err := service.BulkUpdateQuantity(ctx, owner, []BulkQuantityUpdate{
			{ItemID: foreign.ID.String(), Quantity: intPtr(3)},
			{ItemID: uuid.NewString(), Quantity: intPtr(3)},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.Equal(t, "item not found or not authorized", results[0].Message)
		assert.False(t, results[1].Success)
		assert.Equal(t, "item not found or not authorized", results[1].Message)

		stored, _ := store.FindByID(foreign.ID)
		assert.Equal(t, 5, stored.Quantity)
	})

	t.Run("malformed entries fail per entry", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)

		results, err := service.BulkUpdateQuantity(ctx, owner, []BulkQuantityUpdate{
			{ItemID: "not-a-uuid", Quantity: intPtr(3)},
			{ItemID: item.ID.String()},
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "invalid item id", results[0].Message)
		assert.Equal(t, "quantity is required", results[1].Message)
	})

	t.Run("store failure fails the call", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)
		item := store.put(owner, "bolts", 5, nil)
		store.err = errors.New("connection refused")

		_, err := service.BulkUpdateQuantity(ctx, owner, []BulkQuantityUpdate{
			{ItemID: item.ID.String(), Quantity: intPtr(3)},
		})
		assert.Error(t, err)
	})

	t.Run("empty batch yields empty results", func(t *testing.T) {
		store := newMemStore()
		service := NewInventoryService(store, nil)

		results, err := service.BulkUpdateQuantity(ctx, owner, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestInventoryService_LowStockItems(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := newMemStore()
	service := NewInventoryService(store, nil)

	store.put(owner, "empty", 0, nil)
	store.put(owner, "low", 4, nil)
	store.put(owner, "fine", 25, nil)

	t.Run("default threshold", func(t *testing.T) {
		items, err := service.LowStockItems(ctx, owner, 0)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("custom threshold", func(t *testing.T) {
		items, err := service.LowStockItems(ctx, owner, 30)
		require.NoError(t, err)
		assert.Len(t, items, 3)

		items, err = service.LowStockItems(ctx, owner, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "empty", items[0].Name)
	})
}
