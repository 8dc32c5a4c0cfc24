// Package sample decides which values of a width go into a fixture table:
// every value for the narrow widths, and windows around the minimum, zero and
// maximum for the wide ones.
package sample

import (
	"iter"

	"github.com/pkg/errors"

	"writeints.mleku.dev/width"
)

// DefaultWindow is the number of consecutive values in each boundary window.
const DefaultWindow = 1024

// ErrInvalidWindow is returned when a boundary window is empty or so large the
// windows would overlap.
var ErrInvalidWindow = errors.New("invalid window")

// Span is an inclusive range of values, Lo <= Hi.
type Span struct {
	Lo, Hi int64
}

// Len is the number of values in the span.
func (s Span) Len() uint64 { return uint64(s.Hi) - uint64(s.Lo) + 1 }

// Values yields Lo through Hi ascending. The loop stops by comparing against Hi
// before incrementing so a span ending at math.MaxInt64 never wraps.
func (s Span) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for v := s.Lo; ; v++ {
			if !yield(v) || v == s.Hi {
				return
			}
		}
	}
}

// Plan is an ordered list of spans. Document order is plan order, which is not
// necessarily ascending across spans.
type Plan []Span

// Len is the total number of values in the plan.
func (p Plan) Len() (n uint64) {
	for _, s := range p {
		n += s.Len()
	}
	return
}

// Values yields every value of every span in order.
func (p Plan) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, s := range p {
			for v := range s.Values() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Exhaustive covers every value of the width once.
func Exhaustive(w width.W) Plan { return Plan{{w.Min(), w.Max()}} }

// MaxWindow is the largest window that keeps the three boundary windows of w
// apart.
func MaxWindow(w width.W) int64 { return 1<<(w.Bits()-2) - 1 }

// Boundary covers [min, min+window), [-window, window), [max-window, max) and
// finally max on its own.
func Boundary(w width.W, window int64) (p Plan, err error) {
	if window < 1 || window > MaxWindow(w) {
		err = errors.Wrapf(ErrInvalidWindow, "%d for %d bit width, must be 1 to %d",
			window, w, MaxWindow(w))
		return
	}
	lo, hi := w.Min(), w.Max()
	p = Plan{
		{lo, lo + window - 1},
		{-window, window - 1},
		{hi - window, hi - 1},
		{hi, hi},
	}
	return
}

// For returns the plan a width is tabulated with: exhaustive for 8 and 16
// bits, where window is ignored, and boundary sampled for 32 and 64 bits.
func For(w width.W, window int64) (p Plan, err error) {
	switch w {
	case width.W8, width.W16:
		p = Exhaustive(w)
	case width.W32, width.W64:
		p, err = Boundary(w, window)
	default:
		err = errors.Wrapf(width.ErrInvalidWidth, "%d", w)
	}
	return
}
