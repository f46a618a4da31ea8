// Package schema declares the expected shape of untrusted JSON data and
// validates decoded values against it.
//
// A Schema is built once from composable constructors (String, Number, Bool,
// Object, Array, Union) and is never modified afterwards, so a single Schema
// can be shared by any number of concurrent validations. Validation never
// fails with an error for bad input: it returns an Outcome that is either
// valid (carrying the validated value with defaults and transforms applied)
// or invalid (carrying every Violation found, each qualified by its Path).
//
// Only a Schema that contradicts itself (for example a minimum above its
// maximum) is rejected, by New, which callers are expected to treat as a
// fatal startup condition.
package schema
