// Package pathvalue reads and writes values in nested map[string]any trees
// addressed by dotted paths.
//
// # Paths
//
// A path is split on "." into segments, each naming a map key:
//
//	attrs := map[string]any{}
//	pathvalue.Set(attrs, "address.city", "Lisbon")
//	// attrs == map[string]any{"address": map[string]any{"city": "Lisbon"}}
//
// # Collisions
//
// Writes are last-write-wins at the leaf. When an intermediate segment
// holds a non-map value, Set replaces it with a new map so the deeper write
// succeeds. Writing "a" after "a.b" replaces the whole subtree.
//
// Empty segments ("a..b", "") are not rejected; they address the "" key.
package pathvalue
