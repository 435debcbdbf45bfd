// Package buffer implements the pure, rune-accurate document model behind the
// snippet textarea.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open:
// [Start, End). Rune offsets count '\n' as one rune, which is how selections
// are exchanged with the shortcut router.
package buffer
