package scan

import (
	"reflect"
	"testing"
)

func TestCountKmers(t *testing.T) {
	table := CountKmers("ATGCGATCGATCGATCG", 3)

	want := []KmerCount{
		{"ATG", 1},
		{"TGC", 1},
		{"GCG", 1},
		{"CGA", 3},
		{"GAT", 3},
		{"ATC", 3},
		{"TCG", 3},
	}
	if got := table.Counts(); !reflect.DeepEqual(got, want) {
		t.Errorf("CountKmers() = %v, want %v", got, want)
	}
	if table.Len() != 7 {
		t.Errorf("Len() = %d, want 7", table.Len())
	}
}

func TestFrequencyTable_IncrementDecrement(t *testing.T) {
	table := NewFrequencyTable()
	table.Increment("AAA")
	table.Increment("CCC")
	table.Increment("AAA")

	if got := table.Decrement("AAA"); got != 1 {
		t.Errorf("Decrement(AAA) = %d, want 1", got)
	}
	if got := table.Decrement("CCC"); got != 0 {
		t.Errorf("Decrement(CCC) = %d, want 0", got)
	}
	if got := table.Decrement("GGG"); got != 0 {
		t.Errorf("Decrement(GGG) = %d, want 0", got)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after CCC dropped to zero", table.Len())
	}
	if keys := table.Keys(); !reflect.DeepEqual(keys, []string{"AAA"}) {
		t.Errorf("Keys() = %v", keys)
	}

	// re-adding keeps its first-seen slot
	table.Increment("TTT")
	table.Increment("CCC")
	if keys := table.Keys(); !reflect.DeepEqual(keys, []string{"AAA", "CCC", "TTT"}) {
		t.Errorf("Keys() = %v, want first-seen order", keys)
	}
}

func TestFrequencyTable_Top(t *testing.T) {
	table := CountKmers("ATGCGATCGATCGATCG", 3)

	tests := []struct {
		name string
		n    int
		want []KmerCount
	}{
		{
			"ties keep first-seen order",
			2,
			[]KmerCount{{"CGA", 3}, {"GAT", 3}},
		},
		{
			"more than there are",
			100,
			[]KmerCount{{"CGA", 3}, {"GAT", 3}, {"ATC", 3}, {"TCG", 3}, {"ATG", 1}, {"TGC", 1}, {"GCG", 1}},
		},
		{
			"zero is all",
			0,
			[]KmerCount{{"CGA", 3}, {"GAT", 3}, {"ATC", 3}, {"TCG", 3}, {"ATG", 1}, {"TGC", 1}, {"GCG", 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Top(tt.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Top(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

// the table stays exact through every slide of a window
func TestFrequencyTable_slidingInvariant(t *testing.T) {
	seq := randomSeq(7, 400, "ACGT")
	k, l := 4, 37

	table := CountKmers(seq[:l], k)
	for i := 1; i <= len(seq)-l; i++ {
		table.Decrement(seq[i-1 : i-1+k])
		table.Increment(seq[i+l-k : i+l])

		want := CountKmers(seq[i:i+l], k)
		if table.Len() != want.Len() {
			t.Fatalf("window %d: %d live k-mers, want %d", i, table.Len(), want.Len())
		}
		for _, kmer := range want.Keys() {
			if table.Get(kmer) != want.Get(kmer) {
				t.Fatalf("window %d: count(%s) = %d, want %d", i, kmer, table.Get(kmer), want.Get(kmer))
			}
		}
	}
}

// a window table only ever holds the k-mers of the current window
func TestWindowTable_bounded(t *testing.T) {
	seq := randomSeq(11, 20000, "ACGT")
	k, l := 12, 200

	table := NewWindowTable()
	table.AddKmers(seq[:l], k)
	for i := 1; i <= len(seq)-l; i++ {
		table.Decrement(seq[i-1 : i-1+k])
		table.Increment(seq[i+l-k : i+l])

		if table.Len() > l-k+1 {
			t.Fatalf("window %d: %d live k-mers, at most %d fit", i, table.Len(), l-k+1)
		}
	}
	if len(table.order) != 0 || len(table.seen) != 0 {
		t.Errorf("window table kept %d k-mers of history", len(table.order))
	}

	last := CountKmers(seq[len(seq)-l:], k)
	if table.Len() != last.Len() {
		t.Errorf("Len() = %d, want %d", table.Len(), last.Len())
	}
	for _, kmer := range last.Keys() {
		if table.Get(kmer) != last.Get(kmer) {
			t.Errorf("count(%s) = %d, want %d", kmer, table.Get(kmer), last.Get(kmer))
		}
	}
}

func TestWindowTable_Keys(t *testing.T) {
	table := NewWindowTable()
	for _, kmer := range []string{"TTA", "ACG", "GGC", "ACG"} {
		table.Increment(kmer)
	}
	table.Decrement("GGC")

	if got, want := table.Keys(), []string{"ACG", "TTA"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := table.Top(1); !reflect.DeepEqual(got, []KmerCount{{"ACG", 2}}) {
		t.Errorf("Top(1) = %v", got)
	}
}
