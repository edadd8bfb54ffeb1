// Package scan is the sliding-window engine shared by every analysis: window
// iteration, base composition, k-mer frequency tables, clump detection and
// GC skew.
package scan

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidParameters is returned when k, window, step or threshold are out
	// of range relative to each other or to the sequence length.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrEmptySeries is returned when a minimum is asked of a series without points.
	ErrEmptySeries = errors.New("empty series")
)

// Composition is the base count of a window. Other counts anything that
// isn't A, C, G or T (eg N).
type Composition struct {
	A     int `json:"a"`
	C     int `json:"c"`
	G     int `json:"g"`
	T     int `json:"t"`
	Other int `json:"other"`
}

// add moves the count of base b by delta.
func (c *Composition) add(b byte, delta int) {
	switch b {
	case 'A':
		c.A += delta
	case 'C':
		c.C += delta
	case 'G':
		c.G += delta
	case 'T':
		c.T += delta
	default:
		c.Other += delta
	}
}

// Skew is (G-C)/(G+C) of the composition, 0 when there's no G or C.
func (c Composition) Skew() float64 {
	if c.G+c.C == 0 {
		return 0
	}
	return float64(c.G-c.C) / float64(c.G+c.C)
}

// Windows yields every window of length l, starting at 0 and moving by step,
// while the window fits inside seq. A window longer than seq yields nothing.
func Windows(seq string, l, step int) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if l < 1 || step < 1 {
			return
		}
		for i := 0; i+l <= len(seq); i += step {
			if !yield(i, seq[i:i+l]) {
				return
			}
		}
	}
}

// Compositions yields the base composition of the same windows as Windows.
// Overlapping windows are updated from the previous one by removing the
// bases that left and adding those that entered, so the whole scan is O(n).
func Compositions(seq string, l, step int) iter.Seq2[int, Composition] {
	return func(yield func(int, Composition) bool) {
		if l < 1 || step < 1 || l > len(seq) {
			return
		}

		var comp Composition
		for j := 0; j < l; j++ {
			comp.add(seq[j], 1)
		}
		if !yield(0, comp) {
			return
		}

		for i := step; i+l <= len(seq); i += step {
			if step >= l {
				// no overlap with the last window
				comp = Composition{}
				for j := i; j < i+l; j++ {
					comp.add(seq[j], 1)
				}
			} else {
				for j := i - step; j < i; j++ {
					comp.add(seq[j], -1)
				}
				for j := i - step + l; j < i+l; j++ {
					comp.add(seq[j], 1)
				}
			}

			if !yield(i, comp) {
				return
			}
		}
	}
}
