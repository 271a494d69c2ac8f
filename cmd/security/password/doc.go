// Package password classifies candidate passwords against the new-password criteria.
//
// It provides:
// - Five independent criteria (length without spaces, uppercase, lowercase, digit, special character)
// - An "at least N of M" combinator over the secondary criteria (Validate)
// - A stricter input charset gate (CharsetValid) applied before Validate by form callers
// - A three-valued per-criterion display state with a lenient and a strict update mode
//
// Every function here is pure and total: any string, including the empty string, yields a
// deterministic result. Nothing retains the password value past the call that received it.
package password
