package catalog

import "github.com/roach88/gildedrose/internal/shop"

// Default returns the shop's standard opening stock.
// Each call returns fresh records.
func Default() []*shop.Item {
	return []*shop.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: shop.AgedBrieName, SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: shop.SulfurasName, SellIn: 0, Quality: 80},
		{Name: shop.SulfurasName, SellIn: -1, Quality: 80},
		{Name: shop.BackstagePassesName, SellIn: 15, Quality: 20},
		{Name: shop.BackstagePassesName, SellIn: 10, Quality: 49},
		{Name: shop.BackstagePassesName, SellIn: 5, Quality: 49},
		{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
	}
}
