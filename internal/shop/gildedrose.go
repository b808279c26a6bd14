package shop

import (
	"io"
	"log/slog"

	"github.com/roach88/gildedrose/internal/inventory"
)

// GildedRose owns the shop's stock.
type GildedRose struct {
	Items  []*Item
	logger *slog.Logger
}

// Option configures a GildedRose.
type Option func(*GildedRose)

// WithLogger sets the logger used for per-item debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *GildedRose) {
		g.logger = l
	}
}

// New creates a shop over items. Logging is discarded unless WithLogger is given.
func New(items []*Item, opts ...Option) *GildedRose {
	g := &GildedRose{
		Items:  items,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// UpdateQuality advances every item by one day.
//
// A record with an out-of-range quality is a broken invariant, not an
// expected condition: UpdateQuality panics with the *ConversionError.
// Use UpdateQualityChecked to get the error back instead.
func (g *GildedRose) UpdateQuality() {
	if err := g.UpdateQualityChecked(); err != nil {
		panic(err)
	}
}

// UpdateQualityChecked advances every item by one day and returns the first
// conversion error. On error no record is modified.
func (g *GildedRose) UpdateQualityChecked() error {
	domain := make([]inventory.Item, len(g.Items))
	for i, it := range g.Items {
		d, err := ToDomain(it)
		if err != nil {
			return &ConversionError{Index: i, Name: it.Name, Err: err}
		}
		domain[i] = d
	}

	for i, d := range inventory.NextDay(domain) {
		FromDomain(d, g.Items[i])
		g.logger.Debug("item updated",
			"name", g.Items[i].Name,
			"kind", d.Kind().String(),
			"sell_in", g.Items[i].SellIn,
			"quality", g.Items[i].Quality,
		)
	}
	return nil
}

// UpdateQuality advances items by one day in place.
// It panics on an out-of-range quality, like GildedRose.UpdateQuality.
func UpdateQuality(items []*Item) {
	New(items).UpdateQuality()
}
