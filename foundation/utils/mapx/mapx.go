// File: mapx.go
// Title: Generic Map Helpers
// Description: Sorted keys, shallow clone and overlay merge for any map type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with core map utilities
// - 2026-10-19 v0.2.0: SortedKeys, nil-preserving Clone, Overlay

package mapx

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. A nil or empty map
// gives an empty, non-nil slice.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a shallow copy of m. A nil map stays nil.
func Clone[M ~map[K]V, K comparable, V any](m M) M {
	if m == nil {
		return nil
	}
	out := make(M, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Overlay returns a new map holding base overlaid with each of layers in
// order, so later layers win. The inputs are not modified and the result is
// never nil.
func Overlay[M ~map[K]V, K comparable, V any](base M, layers ...M) M {
	size := len(base)
	for _, l := range layers {
		size += len(l)
	}
	out := make(M, size)
	for k, v := range base {
		out[k] = v
	}
	for _, l := range layers {
		for k, v := range l {
			out[k] = v
		}
	}
	return out
}
