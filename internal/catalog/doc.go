// Package catalog loads inventory fixtures for the shop.
//
// A fixture lists legacy item records and may be written in YAML or CUE:
//
//	# inventory.yaml
//	items:
//	  - name: "Aged Brie"
//	    sell_in: 2
//	    quality: 0
//
//	// inventory.cue
//	items: [
//		{name: "Aged Brie", sell_in: 2, quality: 0},
//	]
//
// Every fixture is checked against an embedded CUE schema (schema.cue):
// names are non-empty, Sulfuras has quality 80, and every other item has a
// quality in [0, 50]. Item names are NFC-normalised before the check so that
// decomposed input still matches the shop's special names.
package catalog
