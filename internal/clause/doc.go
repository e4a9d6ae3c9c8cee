// Package clause implements the late-delivery-and-penalty rule.
//
// The package has two halves:
//
// Parameter model:
// Validating constructors turn raw, externally-sourced records (typically
// decoded JSON) into immutable Parameters and Request values. Every
// malformed input is rejected here, at construction time, with a
// ValidationError.
//
// Evaluator:
// Evaluate is a total, pure function over validated inputs. Given the
// clause parameters and a runtime request it computes the prorated,
// capped penalty and the termination eligibility flag. It performs no
// I/O, holds no state, and cannot fail - all fallibility lives at the
// construction boundary.
//
// CRITICAL PATTERNS:
//
// Mixed time units are never compared in their native form. Every
// duration is converted to a single base (time.Duration) before any
// arithmetic. See TimeUnit.
//
// Money and percentages use decimal.Decimal throughout. The evaluator
// never rounds; currency rounding is a presentation concern of the
// caller.
//
// The current time is injected via the Clock interface so that
// Decision.EvaluatedAt is deterministic under test.
package clause
