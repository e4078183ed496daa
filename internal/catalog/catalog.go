// Package catalog holds the fixed set of product categories stocked in the store.
package catalog

import (
	"fmt"
	"io"
)

// Category is a tag classifying a stocked item into one of the store departments.
type Category int

// CategoryInvalid marks "no selection" / "not found"; CategoryCount bounds the valid range.
const (
	CategoryInvalid Category = iota - 1
	Dresses
	CropTops
	SweatshirtsHoodies
	Blouses
	Skirts
	Shorts
	Jeans
	MatchingSets
	Swimwear
	Accessories
	CategoryCount
)

var categoryNames = [CategoryCount]string{
	Dresses:            "Dresses",
	CropTops:           "Crop Tops",
	SweatshirtsHoodies: "Sweatshirts & Hoodies",
	Blouses:            "Blouses",
	Skirts:             "Skirts",
	Shorts:             "Shorts",
	Jeans:              "Jeans",
	MatchingSets:       "MatchingSets",
	Swimwear:           "Swimwear",
	Accessories:        "Accessories",
}

// Valid reports whether c lies strictly between the Invalid and Count sentinels.
func (c Category) Valid() bool {
	return c > CategoryInvalid && c < CategoryCount
}

// Name returns the display name of the category, or the empty string if c is not valid.
func (c Category) Name() string {
	if !c.Valid() {
		return ""
	}
	return categoryNames[c]
}

func (c Category) String() string {
	return c.Name()
}

// List writes the numbered table of all product categories to w.
func List(w io.Writer) {
	fmt.Fprintf(w, "Product list: \n")
	for i, name := range categoryNames {
		fmt.Fprintf(w, "(%d) %s\n", i, name)
	}
	fmt.Fprintf(w, "---------------\n")
}
