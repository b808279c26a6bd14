package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/gildedrose/internal/report"
	"github.com/roach88/gildedrose/internal/shop"
)

// Harness executes scenarios against the shop.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a silent harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Copy the opening stock so the scenario is not modified
// 2. Snapshot day 0, then update once per day and snapshot again
// 3. Check expect checkpoints
// 4. Evaluate assertions
//
// An error is returned only when the stock cannot be updated at all
// (an out-of-range quality). Failed expectations are reported in the Result.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	items := make([]*shop.Item, len(scenario.Items))
	for i := range scenario.Items {
		it := scenario.Items[i]
		items[i] = &it
	}
	g := shop.New(items, shop.WithLogger(h.logger))

	h.logger.Debug("running scenario", "name", scenario.Name, "days", scenario.Days, "items", len(items))

	result := NewResult()
	result.AddDay(0, report.Snapshot(items))
	for day := 1; day <= scenario.Days; day++ {
		if err := g.UpdateQualityChecked(); err != nil {
			return nil, fmt.Errorf("failed to update day %d: %w", day, err)
		}
		result.AddDay(day, report.Snapshot(items))
	}

	for _, msg := range checkExpectations(result, scenario.Expect) {
		result.AddError(msg)
	}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished", "name", scenario.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

// checkExpectations compares checkpoints with the recorded snapshots.
func checkExpectations(result *Result, checkpoints []Checkpoint) []string {
	var errs []string
	for _, cp := range checkpoints {
		if cp.Day < 0 || cp.Day >= len(result.Days) {
			errs = append(errs, fmt.Sprintf("day %d: no snapshot recorded", cp.Day))
			continue
		}
		snap := result.Days[cp.Day]
		for _, want := range cp.Items {
			if want.Index < 0 || want.Index >= len(snap.Items) {
				errs = append(errs, fmt.Sprintf("day %d: item %d does not exist", cp.Day, want.Index))
				continue
			}
			got := snap.Items[want.Index]
			if want.SellIn != nil && got.SellIn != *want.SellIn {
				errs = append(errs, fmt.Sprintf("day %d item %d (%s): sell_in = %d, want %d",
					cp.Day, want.Index, got.Name, got.SellIn, *want.SellIn))
			}
			if want.Quality != nil && got.Quality != *want.Quality {
				errs = append(errs, fmt.Sprintf("day %d item %d (%s): quality = %d, want %d",
					cp.Day, want.Index, got.Name, got.Quality, *want.Quality))
			}
		}
	}
	return errs
}
