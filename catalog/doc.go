// Package catalog holds the static language and theme tables offered by the
// snippet editor.
//
// Identifiers (Value) are stable: they are stored in shared state and passed
// to the highlighter. Labels are for pickers only. Tables are read-only; the
// accessors return copies.
package catalog
