package toon

import "sort"

// sortByteOrder sorts keys ascending by UTF-8 byte order, the fixed order
// used for object key emission. Go string comparison is already byte-wise
// for UTF-8, so this is a plain lexicographic sort.
func sortByteOrder(keys []string) {
	sort.Strings(keys)
}
