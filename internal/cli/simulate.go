package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/catalog"
	"github.com/roach88/gildedrose/internal/harness"
	"github.com/roach88/gildedrose/internal/report"
	"github.com/roach88/gildedrose/internal/shop"
)

// DefaultDays is the number of days simulate advances when --days is not set.
const DefaultDays = 2

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	Days int

	// RunIDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// SimulationResult is the JSON payload of a simulation.
type SimulationResult struct {
	RunID string                `json:"run_id"`
	Days  []harness.DaySnapshot `json:"days"`
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	return newSimulateCommand(&SimulateOptions{RootOptions: rootOpts})
}

func newSimulateCommand(opts *SimulateOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [fixture]",
		Short: "Print the stock day by day",
		Long: `Age the stock and print a snapshot for every day.

The fixture is a YAML (.yaml, .yml) or CUE (.cue) file listing the opening
stock. Without a fixture the standard opening stock is used. Day 0 is the
opening stock; the shop is updated once between snapshots.

Example:
  gildedrose simulate
  gildedrose simulate --days 30 ./stock.yaml
  gildedrose simulate --format json ./stock.cue`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSimulate(opts, path, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Days, "days", "d", DefaultDays, "number of days to advance")

	return cmd
}

func runSimulate(opts *SimulateOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	if opts.Days < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("days must be non-negative, got %d", opts.Days))
	}

	items, err := loadFixture(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load fixture", err)
	}

	gen := opts.RunIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	runID := gen.Generate()

	source := path
	if source == "" {
		source = "default"
	}
	logger.Info("simulation starting", "run_id", runID, "fixture", source, "items", len(items), "days", opts.Days)

	g := shop.New(items, shop.WithLogger(logger.With("run_id", runID)))

	if opts.Format == "json" {
		result := SimulationResult{RunID: runID}
		for day := 0; day <= opts.Days; day++ {
			if day > 0 {
				if err := g.UpdateQualityChecked(); err != nil {
					return WrapExitError(ExitFailure, fmt.Sprintf("day %d", day), err)
				}
			}
			result.Days = append(result.Days, harness.DaySnapshot{Day: day, Items: report.Snapshot(g.Items)})
		}
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr()}
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if err := report.TextTest(cmd.OutOrStdout(), g, opts.Days); err != nil {
		return WrapExitError(ExitFailure, "simulation failed", err)
	}

	logger.Info("simulation finished", "run_id", runID)
	return nil
}

// loadFixture loads a fixture file, or the standard stock when path is empty.
func loadFixture(path string) ([]*shop.Item, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// fixtureErrorCode extracts the catalog error code, or ErrCodeGeneric.
func fixtureErrorCode(err error) (string, string) {
	var fe *catalog.FixtureError
	if errors.As(err, &fe) {
		return fe.Code, fe.Error()
	}
	return ErrCodeGeneric, err.Error()
}
