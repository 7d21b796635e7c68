// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package enumerable

func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = mapper(elem)
	}
	return mapped
}

// Tally counts the elements of slice by key, giving multiset semantics to
// an ordered slice.
func Tally[T any, K comparable](slice []T, key func(T) K) map[K]int {
	counts := make(map[K]int, len(slice))
	for _, elem := range slice {
		counts[key(elem)]++
	}
	return counts
}

func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	result := initial
	for _, elem := range slice {
		result = reducer(result, elem)
	}
	return result
}
