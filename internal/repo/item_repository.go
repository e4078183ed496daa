package repo

import (
	"errors"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

// SearchPredicate selects items during a linear scan of the inventory.
type SearchPredicate func(models.Item) bool

// ItemRepository defines the interface for inventory data operations.
type ItemRepository interface {
	Add(item models.Item) (models.Item, error)
	Remove(id int) error
	Search(pred SearchPredicate) (models.Item, error)
	GetAll() ([]models.Item, error)
}

// ErrItemNotFound is returned when an item is not found in the repository.
var ErrItemNotFound = errors.New("item not found")
