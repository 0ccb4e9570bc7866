package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Max returns the largest element. Panics on an empty slice.
func Max[T constraints.Ordered](slice []T) T {
	if len(slice) == 0 {
		panic("cannot take max of an empty slice")
	}
	m := slice[0]
	for _, v := range slice[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Count returns how many elements equal item.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for _, v := range slice {
		if v == item {
			n++
		}
	}
	return n
}

// SplitWinners gives every maximal score an equal share of 1, everyone else 0.
func SplitWinners[T constraints.Ordered](scores []T) []float64 {
	shares := make([]float64, len(scores))
	if len(scores) == 0 {
		return shares
	}
	best := Max(scores)
	share := 1.0 / float64(Count(scores, best))
	for i, score := range scores {
		if score == best {
			shares[i] = share
		}
	}
	return shares
}
