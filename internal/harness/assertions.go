package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/gildedrose/internal/inventory"
	"github.com/roach88/gildedrose/internal/shop"
)

// AssertionError is returned when an assertion fails.
// It includes the offending item's history to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	History  []shop.Item
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.History) > 0 {
		fmt.Fprintf(&buf, "\nHistory:\n")
		for day, it := range e.History {
			fmt.Fprintf(&buf, "  [day %d] %s\n", day, it)
		}
	}

	return buf.String()
}

// history returns item index across every day of the run.
func history(days []DaySnapshot, index int) []shop.Item {
	out := make([]shop.Item, 0, len(days))
	for _, d := range days {
		if index < len(d.Items) {
			out = append(out, d.Items[index])
		}
	}
	return out
}

// assertQualityInRange checks every non-legendary item on every day.
func assertQualityInRange(days []DaySnapshot) error {
	for _, d := range days {
		for i, it := range d.Items {
			if shop.KindOf(it.Name) == inventory.KindSulfuras {
				continue
			}
			if it.Quality < inventory.MinQuality || it.Quality > inventory.MaxQuality {
				return &AssertionError{
					Type:     AssertQualityInRange,
					Expected: fmt.Sprintf("quality in [%d, %d]", inventory.MinQuality, inventory.MaxQuality),
					Actual:   fmt.Sprintf("item %d (%s) has quality %d on day %d", i, it.Name, it.Quality, d.Day),
					History:  history(days, i),
				}
			}
		}
	}
	return nil
}

// assertLegendaryFixed checks that every Sulfuras matches its opening state
// and has legendary quality.
func assertLegendaryFixed(days []DaySnapshot) error {
	if len(days) == 0 {
		return nil
	}
	opening := days[0].Items
	for _, d := range days {
		for i, it := range d.Items {
			if shop.KindOf(it.Name) != inventory.KindSulfuras {
				continue
			}
			if it.Quality != inventory.LegendaryQuality || it.SellIn != opening[i].SellIn {
				return &AssertionError{
					Type: AssertLegendaryFixed,
					Expected: fmt.Sprintf("sell_in %d, quality %d",
						opening[i].SellIn, inventory.LegendaryQuality),
					Actual: fmt.Sprintf("item %d has sell_in %d, quality %d on day %d",
						i, it.SellIn, it.Quality, d.Day),
					History: history(days, i),
				}
			}
		}
	}
	return nil
}

// assertMonotonic checks the quality of one item only moves in one direction.
func assertMonotonic(days []DaySnapshot, a Assertion) error {
	hist := history(days, a.Index)
	for i := 1; i < len(hist); i++ {
		prev, curr := hist[i-1].Quality, hist[i].Quality
		bad := (a.Type == AssertNonDecreasing && curr < prev) ||
			(a.Type == AssertNonIncreasing && curr > prev)
		if bad {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("item %d quality %s", a.Index, strings.ReplaceAll(a.Type, "_", "-")),
				Actual:   fmt.Sprintf("quality went from %d to %d on day %d", prev, curr, i),
				History:  hist,
			}
		}
	}
	return nil
}

// EvaluateAssertions runs all assertions against the result.
// Returns a list of error messages (empty if all pass).
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string

	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertQualityInRange:
			err = assertQualityInRange(result.Days)
		case AssertLegendaryFixed:
			err = assertLegendaryFixed(result.Days)
		case AssertNonDecreasing, AssertNonIncreasing:
			err = assertMonotonic(result.Days, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}

	return errs
}
