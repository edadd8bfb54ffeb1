package scan

import "sort"

// KmerCount is a k-mer and how often it was seen.
type KmerCount struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// FrequencyTable maps k-mers to their count in the current window. Only
// k-mers with a count above zero are live. Tables from NewFrequencyTable keep
// the order k-mers were first seen for stable reporting and tie breaks.
type FrequencyTable struct {
	counts map[string]int

	// first-seen order, may include k-mers that are no longer live.
	// nil for window tables
	order []string
	seen  map[string]struct{}
}

// NewFrequencyTable returns an empty table that remembers first-seen order.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{
		counts: make(map[string]int),
		seen:   make(map[string]struct{}),
	}
}

// NewWindowTable returns an empty table that holds only live k-mers, so its
// size is bounded by the window it's slid over. Its Keys are in lexical order.
func NewWindowTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// CountKmers builds a table over every k-mer of seq.
func CountKmers(seq string, k int) *FrequencyTable {
	t := NewFrequencyTable()
	t.AddKmers(seq, k)
	return t
}

// AddKmers increments the count of every k-mer in seq.
func (t *FrequencyTable) AddKmers(seq string, k int) {
	if k < 1 {
		return
	}
	for i := 0; i+k <= len(seq); i++ {
		t.Increment(seq[i : i+k])
	}
}

// Increment adds one to kmer's count and returns the new count.
func (t *FrequencyTable) Increment(kmer string) int {
	if t.seen == nil {
		t.counts[kmer]++
		return t.counts[kmer]
	}
	if _, ok := t.seen[kmer]; !ok {
		t.seen[kmer] = struct{}{}
		t.order = append(t.order, kmer)
	}
	t.counts[kmer]++
	return t.counts[kmer]
}

// Decrement removes one from kmer's count and returns the new count. A k-mer
// that reaches zero is dropped. Decrementing a k-mer that isn't live is a no-op.
func (t *FrequencyTable) Decrement(kmer string) int {
	n, ok := t.counts[kmer]
	if !ok {
		return 0
	}
	if n <= 1 {
		delete(t.counts, kmer)
		return 0
	}
	t.counts[kmer] = n - 1
	return n - 1
}

// Get returns kmer's count, 0 if it isn't live.
func (t *FrequencyTable) Get(kmer string) int {
	return t.counts[kmer]
}

// Len is the number of live k-mers.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Keys returns the live k-mers in the order they were first seen, or in
// lexical order for a window table.
func (t *FrequencyTable) Keys() []string {
	keys := make([]string, 0, len(t.counts))
	if t.seen == nil {
		for kmer := range t.counts {
			keys = append(keys, kmer)
		}
		sort.Strings(keys)
		return keys
	}
	for _, kmer := range t.order {
		if _, live := t.counts[kmer]; live {
			keys = append(keys, kmer)
		}
	}
	return keys
}

// Counts returns every live k-mer with its count, in first-seen order.
func (t *FrequencyTable) Counts() []KmerCount {
	keys := t.Keys()
	counts := make([]KmerCount, len(keys))
	for i, kmer := range keys {
		counts[i] = KmerCount{Kmer: kmer, Count: t.counts[kmer]}
	}
	return counts
}

// Top returns the n most frequent k-mers, ties going to the k-mer seen first.
// n <= 0 returns all of them.
func (t *FrequencyTable) Top(n int) []KmerCount {
	counts := t.Counts()
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n > 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
