// Package header implements HTTP header field names, values, and Map, the
// case-insensitive, order-preserving multimap used by every message head.
//
// Map is an open-addressed Robin Hood table that switches to a keyed,
// per-map-seeded hash when it detects hash-flooding input.
package header
