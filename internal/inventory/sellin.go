package inventory

// SellIn is the number of days left to sell an item.
// It keeps counting down past zero and has no lower bound.
type SellIn int

// Value returns the counter as a plain int.
func (s SellIn) Value() int {
	return int(s)
}

// Decrease returns the counter for the following day.
func (s SellIn) Decrease() SellIn {
	return s - 1
}

// Expired reports whether the sell-by date has passed.
// Call it on today's counter, before Decrease.
func (s SellIn) Expired() bool {
	return s <= 0
}
