// Package report renders the shop's daily text-test transcript.
//
// The transcript is the reference output of the shop: a banner, then for
// each day a header, a column line, and one "name, sellIn, quality" line per
// item, followed by a blank line.
//
//	OMGHAI!
//	-------- day 0 --------
//	name, sellIn, quality
//	Aged Brie, 2, 0
//
//	-------- day 1 --------
//	...
package report

import (
	"fmt"
	"io"

	"github.com/roach88/gildedrose/internal/shop"
)

// Banner opens every transcript.
const Banner = "OMGHAI!"

// WriteBanner writes the transcript banner line.
func WriteBanner(w io.Writer) error {
	_, err := fmt.Fprintln(w, Banner)
	return err
}

// WriteDay writes one day's snapshot of items.
func WriteDay(w io.Writer, day int, items []shop.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n", day); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "name, sellIn, quality"); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(w, it.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Snapshot copies the current state of the records.
func Snapshot(items []*shop.Item) []shop.Item {
	out := make([]shop.Item, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}

// TextTest writes the full transcript for days 0 through days, advancing the
// shop by one day between snapshots. It stops at the first update error.
func TextTest(w io.Writer, g *shop.GildedRose, days int) error {
	if err := WriteBanner(w); err != nil {
		return err
	}
	for day := 0; day <= days; day++ {
		if err := WriteDay(w, day, Snapshot(g.Items)); err != nil {
			return err
		}
		if day == days {
			break
		}
		if err := g.UpdateQualityChecked(); err != nil {
			return fmt.Errorf("day %d: %w", day+1, err)
		}
	}
	return nil
}
