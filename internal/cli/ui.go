// Package cli implements the interactive console loop over the inventory.
package cli

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/shop-inventory/internal/catalog"
	"github.com/rogerio-castellano/shop-inventory/internal/models"
	"github.com/rogerio-castellano/shop-inventory/internal/repo"
)

// Menu command characters.
const (
	optAdd          = 'a'
	optRemove       = 'r'
	optEdit         = 'e'
	optSearch       = 's'
	optListProducts = 'p'
	optListItems    = 'l'
	optQuit         = 'q'

	optSearchByName     = 'n'
	optSearchByCategory = 'p'
)

const invalidOptionMsg = "Invalid option selected. Please try again."

// UI is the blocking, single-threaded console surface. It owns the inventory
// for the lifetime of the process; reader and writer are injected so the loop
// can be driven by scripted sessions in tests.
type UI struct {
	inventory repo.ItemRepository
	out       io.Writer
	prompt    *prompter
	log       *zap.Logger
}

// New creates a UI reading commands from in and writing menus and tables to out.
func New(inventory repo.ItemRepository, in io.Reader, out io.Writer, log *zap.Logger, strictInput bool) *UI {
	return &UI{
		inventory: inventory,
		out:       out,
		prompt:    newPrompter(in, out, strictInput),
		log:       log,
	}
}

// Run executes the menu loop until the operator quits or input is exhausted.
func (u *UI) Run() error {
	fmt.Fprintf(u.out, "Shop Inventory v0.1\n")

	for {
		u.listOptions()
		opt, err := u.prompt.readCommand("Select operation: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading operation: %w", err)
		}

		switch opt {
		case optAdd:
			if err := u.handleAdd(); err != nil {
				return err
			}
		case optSearch:
			if err := u.handleSearch(); err != nil {
				return err
			}
		case optListProducts:
			catalog.List(u.out)
		case optListItems:
			if err := u.listItems(); err != nil {
				return err
			}
		case optQuit:
			u.log.Info("session ended")
			return nil
		default:
			fmt.Fprintln(u.out, invalidOptionMsg)
		}
	}
}

func (u *UI) listOptions() {
	fmt.Fprintf(u.out, "(%c) Add Item\n", optAdd)
	fmt.Fprintf(u.out, "(%c) Search Item\n", optSearch)
	fmt.Fprintf(u.out, "(%c) List Product Categories\n", optListProducts)
	fmt.Fprintf(u.out, "(%c) List Items in Stock\n", optListItems)
	fmt.Fprintf(u.out, "(%c) Quit\n", optQuit)
}

// handleAdd collects a new item from the operator and appends it to the inventory.
func (u *UI) handleAdd() error {
	item, err := u.collectItem()
	if err != nil {
		return err
	}

	added, err := u.inventory.Add(item)
	if err != nil {
		return fmt.Errorf("adding item: %w", err)
	}

	u.log.Info("item added",
		zap.Int("id", added.ID),
		zap.String("category", added.Category.Name()),
		zap.String("name", added.Name),
	)
	fmt.Fprintf(u.out, "Added item\n\n")
	return nil
}

// collectItem prompts for category, model code, price and quantity until the
// inputs form a valid item. The category loop is unbounded.
func (u *UI) collectItem() (models.Item, error) {
	for {
		catalog.List(u.out)

		ord, err := u.prompt.readInt("Select product category to add: ")
		if err != nil {
			return models.Item{}, err
		}
		category := catalog.Category(ord)
		if !category.Valid() {
			fmt.Fprintln(u.out, invalidOptionMsg)
			continue
		}

		name, err := u.prompt.readLine("Enter model code: ")
		if err != nil {
			return models.Item{}, err
		}
		price, err := u.prompt.readFloat("Enter price: ")
		if err != nil {
			return models.Item{}, err
		}
		quantity, err := u.prompt.readInt("Enter quantity: ")
		if err != nil {
			return models.Item{}, err
		}

		item := models.Item{
			Category: category,
			Name:     name,
			Price:    price,
			Quantity: quantity,
		}
		if err := item.Validate(); err != nil {
			fmt.Fprintf(u.out, "Invalid item: %v. Please try again.\n", err)
			continue
		}
		return item, nil
	}
}

// handleSearch looks up an item by name or category and, on a hit, offers
// remove/edit/quit on the found item.
func (u *UI) handleSearch() error {
	opt, err := u.prompt.readCommand("Search by (n) Name, (p) Product Category: ")
	if err != nil {
		return err
	}

	var pred repo.SearchPredicate
	switch opt {
	case optSearchByName:
		name, err := u.prompt.readLine("Enter model name: ")
		if err != nil {
			return err
		}
		pred = func(item models.Item) bool { return item.Name == name }
	case optSearchByCategory:
		catalog.List(u.out)
		ord, err := u.prompt.readInt("Select product id: ")
		if err != nil {
			return err
		}
		// An out-of-range ordinal is not rejected here; it matches nothing.
		category := catalog.Category(ord)
		pred = func(item models.Item) bool { return item.Category == category }
	default:
		fmt.Fprintln(u.out, invalidOptionMsg)
		return nil
	}

	found, err := u.inventory.Search(pred)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			fmt.Fprintln(u.out, "Item not found. Try adding an item.")
			return nil
		}
		return fmt.Errorf("searching inventory: %w", err)
	}

	return u.foundItemMenu(found)
}

// foundItemMenu loops on the sub-menu for a found item. The item's ID is a
// stable handle, so remove stays valid regardless of other mutations.
func (u *UI) foundItemMenu(found models.Item) error {
	for {
		fmt.Fprintf(u.out, "(%c) Remove Item\n", optRemove)
		fmt.Fprintf(u.out, "(%c) Edit Item\n", optEdit)
		fmt.Fprintf(u.out, "(%c) Quit\n", optQuit)
		opt, err := u.prompt.readCommand("Select operation: ")
		if err != nil {
			return err
		}

		switch opt {
		case optRemove:
			if err := u.inventory.Remove(found.ID); err != nil {
				return fmt.Errorf("removing item %d: %w", found.ID, err)
			}
			u.log.Info("item removed", zap.Int("id", found.ID), zap.String("name", found.Name))
			return nil
		case optEdit:
			replacement, err := u.collectItem()
			if err != nil {
				return err
			}
			if err := u.inventory.Remove(found.ID); err != nil {
				return fmt.Errorf("removing item %d: %w", found.ID, err)
			}
			// The replacement is appended, so an edited item moves to the end.
			added, err := u.inventory.Add(replacement)
			if err != nil {
				return fmt.Errorf("adding replacement item: %w", err)
			}
			u.log.Info("item edited",
				zap.Int("old_id", found.ID),
				zap.Int("id", added.ID),
				zap.String("name", added.Name),
			)
			return nil
		case optQuit:
			return nil
		default:
			fmt.Fprintln(u.out, invalidOptionMsg)
		}
	}
}

// listItems prints the fixed-width table of stocked items in insertion order.
func (u *UI) listItems() error {
	items, err := u.inventory.GetAll()
	if err != nil {
		return fmt.Errorf("listing items: %w", err)
	}

	fmt.Fprintf(u.out, "%32s%64s%16s%8s\n", "Product", "Model Code", "Price (GBP)", "Qty.")
	for _, item := range items {
		fmt.Fprintf(u.out, "%32s%64s%16.2f%8d\n", item.Category.Name(), item.Name, item.Price, item.Quantity)
	}
	fmt.Fprintf(u.out, "---------------\n")
	return nil
}
