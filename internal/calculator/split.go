// Package calculator holds the pure split arithmetic.
package calculator

import "math"

// SplitEven divides price evenly among the given participants with
// cent-exact accounting. The price is converted to an integer number of
// cents, every participant receives cents/N, and the leftover cents%N
// cents go one each to the first participants in list order. The
// returned shares always sum to the price rounded to two decimals — an
// invariant a plain price/N division loses once each share is rounded
// independently for display.
//
// An empty participant list yields an empty map; the caller decides what
// that means (an unassigned item contributes to nobody). A duplicated
// name accumulates every occurrence's share so the sum invariant holds
// regardless of input.
func SplitEven(price float64, participants []string) map[string]float64 {
	shares := make(map[string]float64, len(participants))
	if len(participants) == 0 {
		return shares
	}

	cents := int64(math.Round(price * 100))
	n := int64(len(participants))
	base := cents / n
	remainder := cents % n

	for i, name := range participants {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[name] += float64(share) / 100
	}
	return shares
}
