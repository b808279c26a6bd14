// Package inventory holds the typed model of the Gilded Rose stock and the
// rules that age it by one day.
//
// Every value in this package is immutable. Advancing a day never updates an
// item in place; Item.Next returns a new value and the caller drops the old
// one.
//
// Key constraints:
//   - Bounded quality stays within [0, 50] after every change
//   - Legendary quality is always 80 and never changes
//   - Expiry and backstage thresholds read the sell-in counter as it stood
//     before the day's decrease
//
// This package imports nothing internal. The shop package maps the legacy
// mutable records onto these types.
package inventory
