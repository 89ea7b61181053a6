package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minerItem() Item {
	return Item{
		ProductID: "p1",
		Name:      "Antminer S19",
		Slug:      "antminer-s19",
		Price:     42999,
	}
}

func TestStore_AddItem(t *testing.T) {
	t.Run("Repeated adds converge to one line", func(t *testing.T) {
		store := NewStore(NewMemoryStorage())

		for i := 0; i < 5; i++ {
			store.AddItem(minerItem())
		}

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, 5, store.ItemCount())
	})

	t.Run("Caller-supplied count increments in one call", func(t *testing.T) {
		store := NewStore(NewMemoryStorage())

		item := minerItem()
		item.Quantity = 3
		store.AddItem(item)
		store.AddItem(minerItem()) // unset quantity counts as 1

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("Different products keep separate lines in insertion order", func(t *testing.T) {
		store := NewStore(NewMemoryStorage())

		store.AddItem(minerItem())
		store.AddItem(Item{ProductID: "p2", Name: "PSU", Price: 1999})

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "p1", items[0].ProductID)
		assert.Equal(t, "p2", items[1].ProductID)
	})
}

func TestStore_RemoveItem(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.AddItem(minerItem())

	store.RemoveItem("p1")
	assert.Empty(t, store.Items())

	// Removing an absent ID is a no-op, not an error.
	store.RemoveItem("ghost")
	assert.Empty(t, store.Items())
}

func TestStore_UpdateQuantity(t *testing.T) {
	t.Run("Sets quantity", func(t *testing.T) {
		store := NewStore(NewMemoryStorage())
		store.AddItem(minerItem())

		store.UpdateQuantity("p1", 7)
		assert.Equal(t, 7, store.ItemCount())
	})

	t.Run("Zero is equivalent to removal", func(t *testing.T) {
		withUpdate := NewStore(NewMemoryStorage())
		withRemove := NewStore(NewMemoryStorage())

		item := minerItem()
		item.Quantity = 3
		withUpdate.AddItem(item)
		withRemove.AddItem(item)

		withUpdate.UpdateQuantity("p1", 0)
		withRemove.RemoveItem("p1")

		assert.Equal(t, withRemove.Items(), withUpdate.Items())
		assert.Equal(t, 0, withUpdate.ItemCount())
	})

	t.Run("Unknown ID is a no-op", func(t *testing.T) {
		store := NewStore(NewMemoryStorage())
		store.UpdateQuantity("ghost", 3)
		assert.Empty(t, store.Items())
	})
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.AddItem(minerItem())

	store.Clear()
	assert.Empty(t, store.Items())
	assert.Equal(t, 0.0, store.Subtotal())

	// Idempotent: clearing twice yields the same empty state.
	store.Clear()
	assert.Empty(t, store.Items())
}

func TestStore_DerivedTotals(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	a := Item{ProductID: "A", Name: "A", Price: 1000, Quantity: 2}
	b := Item{ProductID: "B", Name: "B", Price: 500, Quantity: 1}
	store.AddItem(a)
	store.AddItem(b)

	assert.Equal(t, 2500.0, store.Subtotal())
	assert.Equal(t, 3, store.ItemCount())
}

func TestStore_Persistence(t *testing.T) {
	t.Run("Every mutation persists and a new store reloads it", func(t *testing.T) {
		storage := NewMemoryStorage()

		store := NewStore(storage)
		store.AddItem(minerItem())
		store.UpdateQuantity("p1", 2)

		reloaded := NewStore(storage)
		items := reloaded.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 85998.0, reloaded.Subtotal())
	})

	t.Run("Corrupt snapshot degrades to empty cart", func(t *testing.T) {
		storage := NewMemoryStorage()
		storage.snapshot = []byte("{not json")

		store := NewStore(storage)
		assert.Empty(t, store.Items())
	})

	t.Run("Save failure does not lose the in-memory mutation", func(t *testing.T) {
		store := NewStore(failingStorage{})
		store.AddItem(minerItem())
		assert.Equal(t, 1, store.ItemCount())
	})

	t.Run("Nil storage falls back to memory", func(t *testing.T) {
		store := NewStore(nil)
		store.AddItem(minerItem())
		assert.Equal(t, 1, store.ItemCount())
	})
}

type failingStorage struct{}

func (failingStorage) Load() ([]Item, error)  { return nil, errors.New("medium unavailable") }
func (failingStorage) Save(items []Item) error { return errors.New("medium unavailable") }
