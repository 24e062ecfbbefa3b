package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is the mathematical modulo: the result is always in [0, m). m must be
// positive. No intermediate value leaves the range of A, so narrow types
// like int8 don't overflow.
func Mod[A constraints.Signed](a A, m A) A {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedUnique returns the distinct values of nums in ascending order.
func SortedUnique[A constraints.Ordered](nums []A) []A {
	seen := make(map[A]bool)
	for _, v := range nums {
		seen[v] = true
	}
	res := GetKeys(seen)
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}
