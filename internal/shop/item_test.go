package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gildedrose/internal/inventory"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, inventory.KindAgedBrie, KindOf("Aged Brie"))
	assert.Equal(t, inventory.KindSulfuras, KindOf("Sulfuras, Hand of Ragnaros"))
	assert.Equal(t, inventory.KindBackstagePasses, KindOf("Backstage passes to a TAFKAL80ETC concert"))
	assert.Equal(t, inventory.KindNormal, KindOf("+5 Dexterity Vest"))
	assert.Equal(t, inventory.KindNormal, KindOf("Conjured Mana Cake"))
}

func TestKindOf_ExactMatch(t *testing.T) {
	// Near misses are normal items
	assert.Equal(t, inventory.KindNormal, KindOf("aged brie"))
	assert.Equal(t, inventory.KindNormal, KindOf("Aged Brie "))
	assert.Equal(t, inventory.KindNormal, KindOf("Sulfuras"))
	assert.Equal(t, inventory.KindNormal, KindOf("Backstage passes to a Foo concert"))
	assert.Equal(t, inventory.KindNormal, KindOf(""))
}

func TestToDomain_Variants(t *testing.T) {
	tests := []struct {
		item Item
		want inventory.Kind
	}{
		{Item{Name: "Aged Brie", SellIn: 2, Quality: 0}, inventory.KindAgedBrie},
		{Item{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80}, inventory.KindSulfuras},
		{Item{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20}, inventory.KindBackstagePasses},
		{Item{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7}, inventory.KindNormal},
	}

	for _, tt := range tests {
		t.Run(tt.item.Name, func(t *testing.T) {
			d, err := ToDomain(&tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Kind())
		})
	}
}

func TestToDomain_RoundTrip(t *testing.T) {
	records := []Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: "Aged Brie", SellIn: -3, Quality: 50},
		{Name: "Sulfuras, Hand of Ragnaros", SellIn: -1, Quality: 80},
		{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 0, Quality: 0},
	}

	for _, rec := range records {
		d, err := ToDomain(&rec)
		require.NoError(t, err)

		out := Item{Name: rec.Name}
		FromDomain(d, &out)
		assert.Equal(t, rec, out)
	}
}

func TestToDomain_RejectsOutOfRangeQuality(t *testing.T) {
	for _, q := range []int{-1, 51} {
		_, err := ToDomain(&Item{Name: "Aged Brie", SellIn: 1, Quality: q})
		require.Error(t, err)
		assert.True(t, IsRangeError(err))
	}
}

func TestToDomain_SulfurasIgnoresStoredQuality(t *testing.T) {
	d, err := ToDomain(&Item{Name: SulfurasName, SellIn: 3, Quality: 12})
	require.NoError(t, err)
	assert.Equal(t, 80, d.Quality().Value())
	assert.Equal(t, 3, d.SellIn().Value())
}

func TestFromDomain_KeepsName(t *testing.T) {
	it := &Item{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6}
	FromDomain(inventory.NewNormalItem(2, inventory.MustBounded(5)), it)

	assert.Equal(t, Item{Name: "Conjured Mana Cake", SellIn: 2, Quality: 5}, *it)
}

func TestItem_String(t *testing.T) {
	it := Item{Name: "Sulfuras, Hand of Ragnaros", SellIn: -1, Quality: 80}
	assert.Equal(t, "Sulfuras, Hand of Ragnaros, -1, 80", it.String())
}
