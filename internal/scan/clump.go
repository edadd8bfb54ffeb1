package scan

import (
	"fmt"
	"sort"
)

// ClumpSet is the set of k-mers found in a clump.
type ClumpSet map[string]struct{}

// Sorted returns the clump k-mers in lexical order.
func (c ClumpSet) Sorted() []string {
	kmers := make([]string, 0, len(c))
	for kmer := range c {
		kmers = append(kmers, kmer)
	}
	sort.Strings(kmers)
	return kmers
}

// Has returns whether kmer is in the set.
func (c ClumpSet) Has(kmer string) bool {
	_, ok := c[kmer]
	return ok
}

// FindClumps returns every k-mer that occurs at least t times within some
// window of length l in seq.
//
// The first window is counted in full. After that the window slides one base
// at a time: the k-mer starting at the old window's start leaves and the
// k-mer ending at the new window's end enters. Only the entering k-mer can
// reach t, so it's the only one checked.
func FindClumps(seq string, k, l, t int) (ClumpSet, error) {
	n := len(seq)
	if k < 1 || k > l || l > n {
		return nil, fmt.Errorf("%w: need 1 <= k (%d) <= L (%d) <= sequence length (%d)", ErrInvalidParameters, k, l, n)
	}
	if t < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalidParameters, t)
	}

	clumps := make(ClumpSet)
	counts := NewWindowTable()
	for i := 0; i+k <= l; i++ {
		kmer := seq[i : i+k]
		if counts.Increment(kmer) >= t {
			clumps[kmer] = struct{}{}
		}
	}

	for i := 1; i <= n-l; i++ {
		counts.Decrement(seq[i-1 : i-1+k])

		added := seq[i+l-k : i+l]
		if counts.Increment(added) >= t {
			clumps[added] = struct{}{}
		}
	}

	return clumps, nil
}
