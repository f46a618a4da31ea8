// Package projection reshapes validated upstream records and request bodies
// into the minimal response bodies the HTTP endpoints return.
//
// Every function here assumes its input has already passed the matching
// schema. Projections perform no validation and never fail; a field that is
// unexpectedly absent projects to its zero value.
package projection
