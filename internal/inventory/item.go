package inventory

// Kind tags the category of an item.
type Kind int

const (
	KindNormal Kind = iota
	KindAgedBrie
	KindSulfuras
	KindBackstagePasses
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindAgedBrie:
		return "aged_brie"
	case KindSulfuras:
		return "sulfuras"
	case KindBackstagePasses:
		return "backstage_passes"
	default:
		return "unknown"
	}
}

// Item is a sealed interface over the item categories.
// Only NormalItem, AgedBrie, Sulfuras and BackstagePasses implement it.
type Item interface {
	Kind() Kind
	SellIn() SellIn
	Quality() Quality

	// Next returns the item as it will be tomorrow.
	Next() Item

	item() // Sealed
}

var (
	normalBeforeSellBy = Decrease(1)
	normalAfterSellBy  = normalBeforeSellBy.Twice()

	brieBeforeSellBy = Increase(1)
	brieAfterSellBy  = brieBeforeSellBy.Twice()
)

// NormalItem loses one quality point a day, two once expired.
type NormalItem struct {
	sellIn  SellIn
	quality Bounded
}

// NewNormalItem creates a NormalItem.
func NewNormalItem(sellIn SellIn, quality Bounded) NormalItem {
	return NormalItem{sellIn: sellIn, quality: quality}
}

func (NormalItem) item() {}
func (NormalItem) Kind() Kind { return KindNormal }
func (n NormalItem) SellIn() SellIn { return n.sellIn }
func (n NormalItem) Quality() Quality { return n.quality }

// Next implements Item.
func (n NormalItem) Next() Item {
	change := normalBeforeSellBy
	if n.sellIn.Expired() {
		change = normalAfterSellBy
	}
	return NormalItem{
		sellIn:  n.sellIn.Decrease(),
		quality: n.quality.WithChange(change),
	}
}

// AgedBrie gains one quality point a day, two once expired.
type AgedBrie struct {
	sellIn  SellIn
	quality Bounded
}

// NewAgedBrie creates an AgedBrie.
func NewAgedBrie(sellIn SellIn, quality Bounded) AgedBrie {
	return AgedBrie{sellIn: sellIn, quality: quality}
}

func (AgedBrie) item() {}
func (AgedBrie) Kind() Kind { return KindAgedBrie }
func (a AgedBrie) SellIn() SellIn { return a.sellIn }
func (a AgedBrie) Quality() Quality { return a.quality }

// Next implements Item.
func (a AgedBrie) Next() Item {
	change := brieBeforeSellBy
	if a.sellIn.Expired() {
		change = brieAfterSellBy
	}
	return AgedBrie{
		sellIn:  a.sellIn.Decrease(),
		quality: a.quality.WithChange(change),
	}
}

// Sulfuras is legendary: it never has to be sold and never loses quality.
type Sulfuras struct {
	sellIn SellIn
}

// NewSulfuras creates a Sulfuras.
func NewSulfuras(sellIn SellIn) Sulfuras {
	return Sulfuras{sellIn: sellIn}
}

func (Sulfuras) item() {}
func (Sulfuras) Kind() Kind { return KindSulfuras }
func (s Sulfuras) SellIn() SellIn { return s.sellIn }
func (Sulfuras) Quality() Quality { return Legendary{} }

// Next returns s unchanged.
func (s Sulfuras) Next() Item {
	return s
}

// BackstagePasses gain value as the concert approaches and are worthless after it.
type BackstagePasses struct {
	sellIn  SellIn
	quality Bounded
}

// NewBackstagePasses creates a BackstagePasses.
func NewBackstagePasses(sellIn SellIn, quality Bounded) BackstagePasses {
	return BackstagePasses{sellIn: sellIn, quality: quality}
}

func (BackstagePasses) item() {}
func (BackstagePasses) Kind() Kind { return KindBackstagePasses }
func (b BackstagePasses) SellIn() SellIn { return b.sellIn }
func (b BackstagePasses) Quality() Quality { return b.quality }

// Next implements Item.
func (b BackstagePasses) Next() Item {
	return BackstagePasses{
		sellIn:  b.sellIn.Decrease(),
		quality: b.quality.WithChange(backstageChange(b.sellIn)),
	}
}

// backstageChange picks the day's change from the pre-decrease counter.
func backstageChange(sellIn SellIn) Change {
	switch {
	case sellIn > 10:
		return Increase(1)
	case sellIn > 5:
		return Increase(2)
	case sellIn > 0:
		return Increase(3)
	default:
		return ResetToZero()
	}
}

// NextDay advances every item by one day.
// The result has the same length and order as items.
func NextDay(items []Item) []Item {
	next := make([]Item, len(items))
	for i, it := range items {
		next[i] = it.Next()
	}
	return next
}
