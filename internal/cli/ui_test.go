package cli_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/shop-inventory/internal/catalog"
	"github.com/rogerio-castellano/shop-inventory/internal/cli"
	"github.com/rogerio-castellano/shop-inventory/internal/models"
	"github.com/rogerio-castellano/shop-inventory/internal/repo"
)

// runSession drives the UI with a scripted stdin and returns everything it
// printed. Scripts must end with the quit command.
func runSession(t *testing.T, inventory repo.ItemRepository, script string, strict bool) string {
	t.Helper()
	var out bytes.Buffer
	ui := cli.New(inventory, strings.NewReader(script), &out, zap.NewNop(), strict)
	require.NoError(t, ui.Run())
	return out.String()
}

func seedItem(t *testing.T, r *repo.InMemoryItemRepository, category catalog.Category, name string, price float64, qty int) models.Item {
	t.Helper()
	item, err := r.Add(models.Item{Category: category, Name: name, Price: price, Quantity: qty})
	require.NoError(t, err)
	return item
}

func allItems(t *testing.T, r *repo.InMemoryItemRepository) []models.Item {
	t.Helper()
	items, err := r.GetAll()
	require.NoError(t, err)
	return items
}

func TestAddThenListShowsRow(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "a\n6\nJ100\n39.99\n5\nl\nq\n", true)

	assert.Contains(t, out, "Added item")
	wantRow := fmt.Sprintf("%32s%64s%16.2f%8d", "Jeans", "J100", 39.99, 5)
	assert.Contains(t, out, wantRow)

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.Jeans, items[0].Category)
	assert.Equal(t, "J100", items[0].Name)
	assert.Equal(t, 39.99, items[0].Price)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddInvalidCategoryThenValid(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "a\n99\n0\nDRS-1\n10.00\n2\nq\n", true)

	assert.Contains(t, out, "Invalid option selected. Please try again.")

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.Dresses, items[0].Category)
	assert.Equal(t, "DRS-1", items[0].Name)
}

func TestAddModelCodeKeepsInteriorSpaces(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	runSession(t, r, "a\n0\nSummer Dress 01\n19.99\n3\nq\n", true)

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, "Summer Dress 01", items[0].Name)
}

func TestAddRejectsNegativePrice(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "a\n6\nJ100\n-5\n1\n6\nJ100\n5.00\n1\nq\n", true)

	assert.Contains(t, out, "Invalid item:")

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, 5.00, items[0].Price)
}

func TestSearchMissLeavesInventoryUntouched(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)

	out := runSession(t, r, "s\nn\nnonexistent\nq\n", true)

	assert.Contains(t, out, "Item not found. Try adding an item.")
	assert.Len(t, allItems(t, r), 1)
}

func TestSearchByInvalidCategoryMatchesNothing(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)

	out := runSession(t, r, "s\np\n99\nq\n", true)

	assert.Contains(t, out, "Item not found. Try adding an item.")
	assert.Len(t, allItems(t, r), 1)
}

func TestSearchUnknownModeAborts(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)

	out := runSession(t, r, "s\nx\nq\n", true)

	assert.Contains(t, out, "Invalid option selected. Please try again.")
	// The flow aborts without prompting for a search term.
	assert.NotContains(t, out, "Enter model name:")
	assert.Len(t, allItems(t, r), 1)
}

func TestSearchThenRemove(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)
	seedItem(t, r, catalog.Skirts, "S200", 12.50, 2)

	out := runSession(t, r, "s\np\n6\nr\nq\n", true)

	assert.Contains(t, out, "(r) Remove Item")

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, "S200", items[0].Name)
}

func TestSearchSubMenuQuitKeepsItem(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)

	runSession(t, r, "s\nn\nJ100\nq\nq\n", true)

	assert.Len(t, allItems(t, r), 1)
}

func TestSearchSubMenuUnknownCharReprompts(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)

	out := runSession(t, r, "s\nn\nJ100\nz\nq\nq\n", true)

	assert.Contains(t, out, "Invalid option selected. Please try again.")
	// Sub-menu shown twice: once initially, once after the unknown character.
	assert.Equal(t, 2, strings.Count(out, "(e) Edit Item"))
	assert.Len(t, allItems(t, r), 1)
}

// Editing replaces the found item with a freshly collected one; the
// replacement is appended, so it moves to the end of the collection.
func TestEditReplacesAndMovesToEnd(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)
	seedItem(t, r, catalog.Jeans, "J100", 39.99, 5)
	seedItem(t, r, catalog.Skirts, "S200", 12.50, 2)

	runSession(t, r, "s\nn\nJ100\ne\n2\nH300\n25.00\n1\nq\n", true)

	items := allItems(t, r)
	require.Len(t, items, 2)
	assert.Equal(t, "S200", items[0].Name)
	assert.Equal(t, "H300", items[1].Name)
	assert.Equal(t, catalog.SweatshirtsHoodies, items[1].Category)

	_, err := r.Search(func(item models.Item) bool { return item.Name == "J100" })
	assert.ErrorIs(t, err, repo.ErrItemNotFound)
}

func TestUnknownMenuCharRedisplaysMenu(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "z\nq\n", true)

	assert.Contains(t, out, "Invalid option selected. Please try again.")
	assert.Equal(t, 2, strings.Count(out, "(a) Add Item"))
	assert.Empty(t, allItems(t, r))
}

func TestListProducts(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "p\nq\n", true)

	assert.Contains(t, out, "Product list: ")
	assert.Contains(t, out, "(6) Jeans")
	assert.Contains(t, out, "(9) Accessories")
}

func TestStrictNumericInputReprompts(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "a\nabc\n6\nJ100\n39.99\n5\nq\n", true)

	assert.Contains(t, out, "Invalid number entered. Please try again.")

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.Jeans, items[0].Category)
}

// With strict input disabled the historical behavior is preserved: a
// malformed number silently reads as zero, here selecting category 0.
func TestLegacyNumericInputReadsZero(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "a\nabc\nJ100\n39.99\n5\nq\n", false)

	assert.NotContains(t, out, "Invalid number entered. Please try again.")

	items := allItems(t, r)
	require.Len(t, items, 1)
	assert.Equal(t, catalog.Dresses, items[0].Category)
}

func TestQuitEndsSession(t *testing.T) {
	r := repo.NewInMemoryItemRepository(0)

	out := runSession(t, r, "q\n", true)

	assert.Contains(t, out, "Shop Inventory v0.1")
	assert.Equal(t, 1, strings.Count(out, "(a) Add Item"))
}
