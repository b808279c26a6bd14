package shop

import (
	"fmt"

	"github.com/roach88/gildedrose/internal/inventory"
)

// Names the shop gives special treatment. Anything else is a normal item.
const (
	AgedBrieName        = "Aged Brie"
	SulfurasName        = "Sulfuras, Hand of Ragnaros"
	BackstagePassesName = "Backstage passes to a TAFKAL80ETC concert"
)

// Item is the legacy record kept by the shop.
type Item struct {
	Name    string `yaml:"name" json:"name"`
	SellIn  int    `yaml:"sell_in" json:"sell_in"`
	Quality int    `yaml:"quality" json:"quality"`
}

// String formats the item the way the text-test transcript prints it.
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// KindOf maps an item name to its category.
func KindOf(name string) inventory.Kind {
	switch name {
	case AgedBrieName:
		return inventory.KindAgedBrie
	case SulfurasName:
		return inventory.KindSulfuras
	case BackstagePassesName:
		return inventory.KindBackstagePasses
	default:
		return inventory.KindNormal
	}
}

// ToDomain converts a record to its typed variant.
// The stored quality of a Sulfuras record is ignored; legendary quality is fixed.
func ToDomain(it *Item) (inventory.Item, error) {
	kind := KindOf(it.Name)
	sellIn := inventory.SellIn(it.SellIn)

	if kind == inventory.KindSulfuras {
		return inventory.NewSulfuras(sellIn), nil
	}

	quality, err := inventory.NewBounded(it.Quality)
	if err != nil {
		return nil, err
	}

	switch kind {
	case inventory.KindAgedBrie:
		return inventory.NewAgedBrie(sellIn, quality), nil
	case inventory.KindBackstagePasses:
		return inventory.NewBackstagePasses(sellIn, quality), nil
	default:
		return inventory.NewNormalItem(sellIn, quality), nil
	}
}

// FromDomain writes the scalar state of d onto it. Name is left alone.
func FromDomain(d inventory.Item, it *Item) {
	it.SellIn = d.SellIn().Value()
	it.Quality = d.Quality().Value()
}
