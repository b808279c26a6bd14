// Package shop is the boundary between the legacy item records and the
// typed inventory model.
//
// Callers hand over a slice of mutable *Item records. Each record is mapped
// to an inventory.Item by exact name match, aged by one day, and its SellIn
// and Quality fields are written back. Record identity, order and Name are
// preserved.
//
// Usage:
//
//	items := []*shop.Item{
//	    {Name: "Aged Brie", SellIn: 2, Quality: 0},
//	}
//	shop.New(items).UpdateQuality()
package shop
