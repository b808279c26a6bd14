// Package harness runs conformance scenarios against the shop.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	days: 3
//	items:
//	  - name: "Aged Brie"
//	    sell_in: 2
//	    quality: 0
//	expect:
//	  - day: 3
//	    items:
//	      - index: 0
//	        sell_in: -1
//	        quality: 4
//	assertions:
//	  - type: quality_in_range
//	  - type: non_decreasing
//	    index: 0
//
// Day 0 is the opening stock; day N is the state after N updates. Expected
// items use subset semantics: only the fields present are compared.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - quality_in_range: every non-legendary item stays within [0, 50] on every day
//   - legendary_fixed: every Sulfuras keeps quality 80 and its opening sell-in
//   - non_decreasing: the quality of item Index never drops from one day to the next
//   - non_increasing: the quality of item Index never rises from one day to the next
//
// # Golden Files
//
// RunWithGolden renders every day of a run as a text-test transcript and
// compares it with testdata/golden/{scenario.Name}.golden. To regenerate:
//
//	go test ./internal/harness -update
package harness
