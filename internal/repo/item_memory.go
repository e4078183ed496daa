package repo

import (
	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

// DefaultCapacity is the pre-allocation hint for the backing slice. It is not a hard limit.
const DefaultCapacity = 30

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// Items keep insertion order; lookups are linear scans. It assumes exclusive
// single-threaded access.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository(capacity int) *InMemoryItemRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryItemRepository{
		items:  make([]models.Item, 0, capacity),
		nextID: 1,
	}
}

// Add appends a new item to the inventory and assigns its ID.
// The ID is a stable handle: it stays valid across later mutations.
func (r *InMemoryItemRepository) Add(item models.Item) (models.Item, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// Remove deletes the item with the given ID from the inventory.
func (r *InMemoryItemRepository) Remove(id int) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Search scans the inventory in insertion order and returns the first item
// for which pred holds.
func (r *InMemoryItemRepository) Search(pred SearchPredicate) (models.Item, error) {
	for _, item := range r.items {
		if pred(item) {
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// GetAll retrieves all items in insertion order.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	return r.items, nil
}

// Clear empties the repository. Intended for tests.
func (r *InMemoryItemRepository) Clear() {
	r.items = r.items[:0]
}
