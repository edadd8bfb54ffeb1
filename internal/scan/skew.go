package scan

import (
	"fmt"
	"strings"
)

// Point is a single value of a windowed series at the window's start.
type Point struct {
	Pos   int     `json:"pos"`
	Value float64 `json:"value"`
}

// Series is a windowed signal in increasing position order.
type Series []Point

// Positions returns the x values of the series.
func (s Series) Positions() []int {
	pos := make([]int, len(s))
	for i, p := range s {
		pos[i] = p.Pos
	}
	return pos
}

// Values returns the y values of the series.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s))
	for i, p := range s {
		vals[i] = p.Value
	}
	return vals
}

// WindowSkew is (G-C)/(G+C) of window, 0 if it has neither G nor C.
func WindowSkew(window string) float64 {
	g := strings.Count(window, "G")
	c := strings.Count(window, "C")
	if g+c == 0 {
		return 0.0
	}
	return float64(g-c) / float64(g+c)
}

// validateWindow checks a window length and step against a sequence length.
func validateWindow(n, l, step int) error {
	if l < 1 || step < 1 {
		return fmt.Errorf("%w: window (%d) and step (%d) must be at least 1", ErrInvalidParameters, l, step)
	}
	if l > n {
		return fmt.Errorf("%w: window (%d) is longer than the sequence (%d)", ErrInvalidParameters, l, n)
	}
	return nil
}

// SkewSeries is the GC skew of every window of length l, moving by step.
func SkewSeries(seq string, l, step int) (Series, error) {
	if err := validateWindow(len(seq), l, step); err != nil {
		return nil, err
	}

	series := make(Series, 0, (len(seq)-l)/step+1)
	for pos, comp := range Compositions(seq, l, step) {
		series = append(series, Point{Pos: pos, Value: comp.Skew()})
	}
	return series, nil
}

// CumulativeSkewSeries is the running sum of SkewSeries.
func CumulativeSkewSeries(seq string, l, step int) (Series, error) {
	series, err := SkewSeries(seq, l, step)
	if err != nil {
		return nil, err
	}
	return Cumulative(series), nil
}

// Cumulative returns the running sum of the series' values at the same positions.
func Cumulative(series Series) Series {
	cum := make(Series, len(series))
	total := 0.0
	for i, p := range series {
		total += p.Value
		cum[i] = Point{Pos: p.Pos, Value: total}
	}
	return cum
}

// FindMinimum returns the first point holding the series' lowest value.
func FindMinimum(series Series) (Point, error) {
	if len(series) == 0 {
		return Point{}, ErrEmptySeries
	}

	lowest := series[0]
	for _, p := range series[1:] {
		if p.Value < lowest.Value {
			lowest = p
		}
	}
	return lowest, nil
}

// TopKmers returns the n most frequent k-mers of region, ties going to the
// k-mer seen first.
func TopKmers(region string, k, n int) []KmerCount {
	return CountKmers(region, k).Top(n)
}

// Region is the neighbourhood of the window at pos: the window itself plus
// flank bases on each side, clipped to [0, n).
func Region(n, pos, l, flank int) (start, end int) {
	start = max(0, pos-flank)
	end = min(n, pos+l+flank)
	if start > end {
		start = end
	}
	return
}

// KmerDensity is the number of (possibly overlapping) occurrences of kmer
// that lie entirely inside each window of length l, moving by step.
func KmerDensity(seq, kmer string, l, step int) (Series, error) {
	if err := validateWindow(len(seq), l, step); err != nil {
		return nil, err
	}
	k := len(kmer)
	if k < 1 || k > l {
		return nil, fmt.Errorf("%w: k-mer length (%d) must be between 1 and the window (%d)", ErrInvalidParameters, k, l)
	}

	// starts[i] is the number of occurrences starting before i
	starts := make([]int, len(seq)+1)
	for i := 0; i < len(seq); i++ {
		starts[i+1] = starts[i]
		if i+k <= len(seq) && seq[i:i+k] == kmer {
			starts[i+1]++
		}
	}

	var series Series
	for pos := range Windows(seq, l, step) {
		count := starts[pos+l-k+1] - starts[pos]
		series = append(series, Point{Pos: pos, Value: float64(count)})
	}
	return series, nil
}
