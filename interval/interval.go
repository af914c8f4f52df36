package interval

import (
	"fmt"
	"math"
)

// Interval is a closed interval of real numbers [lo, hi] together with a
// flag recording whether NaN is among the admissible values. Two
// distinguished values exist: the empty interval (no admissible number)
// and the unbounded interval (any number). Intervals are immutable
// values; all operations return new intervals.
//
// Do not use the zero Interval; it denotes the singleton [0, 0]. Use
// Empty for "no value".
type Interval struct {
	hasNaN bool
	lo, hi float64
}

// Empty returns the interval containing no values at all.
func Empty() Interval {
	return Interval{hasNaN: false, lo: math.Inf(1), hi: math.Inf(-1)}
}

// NaN returns the interval containing only NaN.
func NaN() Interval {
	return Interval{hasNaN: true, lo: math.Inf(1), hi: math.Inf(-1)}
}

// Unbounded returns the interval admitting every real number, and NaN as
// well if withNaN is set. Used for don't-care results.
func Unbounded(withNaN bool) Interval {
	return Interval{hasNaN: withNaN, lo: math.Inf(-1), hi: math.Inf(1)}
}

// Exactly returns the singleton interval [d, d]. A NaN argument yields
// the NaN interval.
func Exactly(d float64) Interval {
	if math.IsNaN(d) {
		return NaN()
	}
	return Interval{lo: d, hi: d}
}

// NewInterval returns the smallest interval containing both a and b, in
// either order. NaN arguments contribute the NaN flag instead of a bound.
func NewInterval(a, b float64) Interval {
	return Exactly(a).Union(Exactly(b))
}

// withNumbers builds an interval from explicit parts. lo > hi denotes an
// empty number part.
func withNumbers(hasNaN bool, lo, hi float64) Interval {
	return Interval{hasNaN: hasNaN, lo: lo, hi: hi}
}

// IsEmpty reports whether the interval contains no numbers. The NaN flag
// is independent: NaN() is empty but still admits NaN.
func (x Interval) IsEmpty() bool { return x.lo > x.hi }

// HasNaN reports whether NaN is an admissible value.
func (x Interval) HasNaN() bool { return x.hasNaN }

// Lo returns the lower bound. Meaningless when the interval is empty.
func (x Interval) Lo() float64 { return x.lo }

// Hi returns the upper bound. Meaningless when the interval is empty.
func (x Interval) Hi() float64 { return x.hi }

// NaNPart returns the interval restricted to its NaN component: NaN() if
// NaN is admissible, Empty() otherwise.
func (x Interval) NaNPart() Interval {
	return Interval{hasNaN: x.hasNaN, lo: math.Inf(1), hi: math.Inf(-1)}
}

// NumberPart returns the interval without its NaN component.
func (x Interval) NumberPart() Interval {
	return Interval{lo: x.lo, hi: x.hi}
}

// Union returns the smallest interval containing both x and y, with NaN
// flags OR'd.
func (x Interval) Union(y Interval) Interval {
	if x.IsEmpty() {
		return Interval{hasNaN: x.hasNaN || y.hasNaN, lo: y.lo, hi: y.hi}
	}
	if y.IsEmpty() {
		return Interval{hasNaN: x.hasNaN || y.hasNaN, lo: x.lo, hi: x.hi}
	}
	return Interval{
		hasNaN: x.hasNaN || y.hasNaN,
		lo:     math.Min(x.lo, y.lo),
		hi:     math.Max(x.hi, y.hi),
	}
}

// Intersection returns the interval of values admissible by both x and y.
func (x Interval) Intersection(y Interval) Interval {
	res := Interval{
		hasNaN: x.hasNaN && y.hasNaN,
		lo:     math.Max(x.lo, y.lo),
		hi:     math.Min(x.hi, y.hi),
	}
	if res.IsEmpty() {
		return Interval{hasNaN: res.hasNaN, lo: math.Inf(1), hi: math.Inf(-1)}
	}
	return res
}

// Contains reports whether every value admitted by y is admitted by x.
func (x Interval) Contains(y Interval) bool {
	if y.hasNaN && !x.hasNaN {
		return false
	}
	if y.IsEmpty() {
		return true
	}
	return y.lo >= x.lo && y.hi <= x.hi
}

// ContainsValue reports whether the single value d is admissible.
func (x Interval) ContainsValue(d float64) bool {
	return x.Contains(Exactly(d))
}

// Intersects reports whether x and y admit at least one common value
// (a shared number, or NaN on both sides).
func (x Interval) Intersects(y Interval) bool {
	if x.hasNaN && y.hasNaN {
		return true
	}
	if x.IsEmpty() || y.IsEmpty() {
		return false
	}
	return x.hi >= y.lo && y.hi >= x.lo
}

// IsFinite reports whether both bounds are finite and within [-maxValue,
// maxValue]. Empty intervals are trivially finite.
func (x Interval) IsFinite(maxValue float64) bool {
	if x.IsEmpty() {
		return true
	}
	return !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0) &&
		math.Abs(x.lo) <= maxValue && math.Abs(x.hi) <= maxValue
}

// Length returns hi - lo, or 0 for an empty interval.
func (x Interval) Length() float64 {
	if x.IsEmpty() {
		return 0
	}
	return x.hi - x.lo
}

// Midpoint returns the midpoint of the interval. Meaningless when empty.
func (x Interval) Midpoint() float64 {
	return 0.5*x.lo + 0.5*x.hi
}

// String returns a debug representation such as "[0.25, 0.5]" or
// "[0.25, 0.5] u NaN".
func (x Interval) String() string {
	var num string
	if x.IsEmpty() {
		num = "()"
	} else {
		num = fmt.Sprintf("[%g, %g]", x.lo, x.hi)
	}
	if x.hasNaN {
		return num + " u NaN"
	}
	return num
}
