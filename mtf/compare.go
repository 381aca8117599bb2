package mtf

import (
	"bytes"
	"cmp"
	"strings"
)

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must be consistent for the lifetime of the
// table it is given to.
type CompareFunc[K any] func(a, b K) int

// Ordered compares keys of any ordered type with cmp.Compare.
func Ordered[K cmp.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}

// Bytes compares byte slice keys lexicographically.
func Bytes() CompareFunc[[]byte] {
	return bytes.Compare
}

// FoldStrings compares strings under Unicode case folding, so "Key" and
// "KEY" name the same entry.
func FoldStrings() CompareFunc[string] {
	return func(a, b string) int {
		if strings.EqualFold(a, b) {
			return 0
		}
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Reverse inverts the order of c. Equality is unchanged.
func Reverse[K any](c CompareFunc[K]) CompareFunc[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}
