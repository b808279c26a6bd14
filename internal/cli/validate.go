package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gildedrose/internal/catalog"
	"github.com/roach88/gildedrose/internal/shop"
)

// ValidationResult summarises a valid fixture.
type ValidationResult struct {
	Path  string         `json:"path"`
	Items int            `json:"items"`
	Kinds map[string]int `json:"kinds"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <fixture>",
		Short: "Check a stock fixture without aging it",
		Long: `Validate a YAML or CUE stock fixture against the inventory schema.

Names must be non-empty, Sulfuras must have quality 80, and every other
item must have a quality between 0 and 50.

Exit codes:
  0 - Fixture is valid
  1 - Fixture is invalid`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	items, err := catalog.Load(path)
	if err != nil {
		code, message := fixtureErrorCode(err)
		_ = formatter.Error(code, message, nil)
		return WrapExitError(ExitFailure, "fixture is invalid", err)
	}

	result := ValidationResult{
		Path:  path,
		Items: len(items),
		Kinds: make(map[string]int),
	}
	for _, it := range items {
		kind := shop.KindOf(it.Name)
		result.Kinds[kind.String()]++
		formatter.VerboseLog("%s: %s", kind, it)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s: %d item(s) valid\n", path, result.Items)
	return nil
}
