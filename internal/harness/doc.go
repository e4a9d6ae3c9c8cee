// Package harness provides conformance testing for clause behavior.
//
// A scenario bundles one parameter document, one request document, and
// the expected decision. The harness builds the validated inputs,
// evaluates the clause with a fixed clock, and checks the expectation.
//
// # Scenario Format
//
// Scenarios are defined in YAML files:
//
//	name: below_cap
//	description: "Two complete periods, under the cap"
//	params:
//	  clauseId: clause-281
//	  forceMajeure: false
//	  penaltyDuration: { amount: 2, unit: days }
//	  penaltyRatePercent: "10.5"
//	  capPercent: "55"
//	  terminationThreshold: { amount: 15, unit: days }
//	  fractionalUnit: days
//	request:
//	  goodsValue: "100"
//	  delay: { amount: "4", unit: days }
//	expect:
//	  penaltyAmount: "21"
//	  appliedPercent: "21"
//	  buyerMayTerminate: false
//	  periods: 2
//
// Decimal-valued fields are YAML strings so scenarios stay exact; they
// are parsed with shopspring/decimal, never through floats.
//
// # Deterministic Testing
//
// Scenarios run against testutil.FixedClock, so EvaluatedAt is stable
// and decision snapshots can be compared against golden files with
// goldie. To regenerate golden files:
//
//	go test ./internal/harness -update
package harness
