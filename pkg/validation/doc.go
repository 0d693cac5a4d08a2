// Package validation provides a generic, fail-fast rule pipeline.
//
// A Ruleset holds an ordered list of Rule functions. Validate runs them in
// insertion order against an evolving input: each rule returns a Result and the
// input for the next rule. The first error Result stops the run and is returned
// verbatim; otherwise the last rule's success Result is returned.
//
// Key constructs:
// - Result: Ok/Err sum type with panicking accessors on the wrong variant
// - Next: optional next input (Forward/Stop)
// - Rule, Pass, Reject: rule shape and helpers to build its return values
// - Ruleset: New/Add/AddNamed/Validate
// - Finally/Map: consume or transform a Result
//
// Configuration mistakes (no rules, a rule that succeeds without forwarding an
// input while rules remain) are returned as Go errors, never as Err results.
package validation
