package scan

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

// randomSeq is a deterministic sequence of n letters from alphabet.
func randomSeq(seed int64, n int, alphabet string) string {
	r := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return b.String()
}

// bruteClumps recounts every window from scratch.
func bruteClumps(seq string, k, l, t int) ClumpSet {
	clumps := make(ClumpSet)
	for i := 0; i+l <= len(seq); i++ {
		counts := map[string]int{}
		window := seq[i : i+l]
		for j := 0; j+k <= len(window); j++ {
			counts[window[j:j+k]]++
		}
		for kmer, c := range counts {
			if c >= t {
				clumps[kmer] = struct{}{}
			}
		}
	}
	return clumps
}

func TestFindClumps_matchesBruteForce(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		k, l, t int
	}{
		{"short alphabet", randomSeq(1, 300, "AC"), 3, 20, 4},
		{"dna", randomSeq(2, 1000, "ACGT"), 4, 60, 3},
		{"dna k=1", randomSeq(3, 200, "ACGT"), 1, 10, 5},
		{"window is the sequence", randomSeq(4, 80, "ACGT"), 2, 80, 6},
		{"k equals window", randomSeq(5, 150, "AT"), 6, 6, 1},
		{"with Ns", randomSeq(6, 500, "ACGTN"), 3, 50, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindClumps(tt.seq, tt.k, tt.l, tt.t)
			if err != nil {
				t.Fatal(err)
			}
			want := bruteClumps(tt.seq, tt.k, tt.l, tt.t)
			if !reflect.DeepEqual(got.Sorted(), want.Sorted()) {
				t.Errorf("FindClumps() = %v, want %v", got.Sorted(), want.Sorted())
			}
		})
	}
}

func TestFindClumps_planted(t *testing.T) {
	kmer := "CGTTGCATG"
	b := []byte(strings.Repeat("ACGT", 500))
	for _, pos := range []int{100, 200, 300, 400, 500} {
		copy(b[pos:], kmer)
	}
	seq := string(b)

	clumps, err := FindClumps(seq, 9, 500, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !clumps.Has(kmer) {
		t.Errorf("%s planted 5 times in 409bp not found with t=5", kmer)
	}

	clumps, err = FindClumps(seq, 9, 500, 6)
	if err != nil {
		t.Fatal(err)
	}
	if clumps.Has(kmer) {
		t.Errorf("%s found with t=6 but only planted 5 times", kmer)
	}
}

func TestFindClumps_idempotent(t *testing.T) {
	seq := randomSeq(9, 600, "ACGT")
	first, _ := FindClumps(seq, 3, 40, 3)
	second, _ := FindClumps(seq, 3, 40, 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("FindClumps() not repeatable on the same input")
	}
}

func TestFindClumps_invalidParameters(t *testing.T) {
	seq := "ACGTACGTAC"

	tests := []struct {
		name    string
		k, l, t int
	}{
		{"zero k", 0, 5, 1},
		{"k longer than window", 6, 5, 1},
		{"window longer than sequence", 3, 11, 1},
		{"zero threshold", 3, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FindClumps(seq, tt.k, tt.l, tt.t); !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("FindClumps() err = %v, want ErrInvalidParameters", err)
			}
		})
	}
}
