package harness

import "github.com/roach88/gildedrose/internal/shop"

// DaySnapshot is the state of every item on one day.
type DaySnapshot struct {
	Day   int         `json:"day"`
	Items []shop.Item `json:"items"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every checkpoint and assertion held.
	Pass bool `json:"pass"`

	// Days holds one snapshot per day, from day 0 to the last day.
	Days []DaySnapshot `json:"days"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Days:   []DaySnapshot{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddDay appends a snapshot.
func (r *Result) AddDay(day int, items []shop.Item) {
	r.Days = append(r.Days, DaySnapshot{Day: day, Items: items})
}

// Final returns the last snapshot, or nil for an empty result.
func (r *Result) Final() *DaySnapshot {
	if len(r.Days) == 0 {
		return nil
	}
	return &r.Days[len(r.Days)-1]
}
