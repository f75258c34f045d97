// Package values turns wizard answers into a camunda-platform Helm values
// document.
//
// Generation is pure and deterministic. Sections are written in a fixed
// order into an ordered key tree: the shared search database, per-product
// search connections, the Web Modeler database and finally the environment
// variable lists. When Operate and Tasklist share a search database their
// connection fields are read through one alias table, so the shared block
// and the per-product blocks are never both emitted.
package values
