// Package roster computes work shifts for a fixed set of people.
//
// Each person follows one of two cyclical rules anchored to a start date:
//   - RuleFixedDay: always on day shift
//   - RuleFourDayRotation: day shift, night shift, rest, rest, repeating
//
// A Registry is built once from caller-supplied records and is read-only
// afterwards, so it is safe to share between goroutines. Every query is a
// pure function of the registry and its arguments.
//
// Queries never fail for an unknown person or an unknown rule. Those
// outcomes are reported as a Result status so that one bad record does not
// abort a batch query for everyone else. Only malformed dates are errors.
package roster
