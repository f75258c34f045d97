// Package wizard implements the conditional questionnaire engine behind
// c8values.
//
// A [Schema] is an ordered catalogue of steps and questions whose visibility
// is controlled by serializable [Condition] values. A [Session] owns the
// answer store, re-resolves the visible steps after every answer and keeps
// the navigation position valid. Rendering answers into a document is left
// to a generator function supplied with [WithGenerator].
//
// Everything in this package is synchronous and total: invalid navigation and
// out-of-range edits are reported as no-ops rather than errors.
package wizard
