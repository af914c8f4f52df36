// Package interval implements adjustable-precision interval arithmetic.
//
// A FloatFormat describes a binary floating-point format with a
// configurable exponent range and fraction width. Applying a FloatFormat
// to a real value (or an Interval of real values) yields the Interval of
// values a conforming implementation may legally produce when it rounds
// the input to that format. This is the numeric foundation the sampling
// verifiers build their tolerance windows on: instead of asking "what is
// the result", they ask "what is the set of representable results".
package interval

import (
	"fmt"
	"math"
)

// Choice is a tri-state answer for format capabilities that the
// underlying specification leaves optional, such as subnormal support.
type Choice uint8

const (
	// No means the capability is known to be absent.
	No Choice = iota

	// Maybe means an implementation may or may not provide the capability;
	// both behaviors have to be admitted.
	Maybe

	// Yes means the capability is known to be present.
	Yes
)

// String returns a string representation of the choice.
func (c Choice) String() string {
	switch c {
	case No:
		return "No"
	case Maybe:
		return "Maybe"
	case Yes:
		return "Yes"
	default:
		return "Unknown"
	}
}

// FloatFormat is an immutable description of a binary floating-point
// format. The zero value is not meaningful; use NewFloatFormat or one of
// the predefined profiles.
type FloatFormat struct {
	minExp         int // exponent of the smallest normal value
	maxExp         int // exponent of the largest finite value
	fractionBits   int
	hasSubnormal   Choice
	hasInf         Choice
	hasNaN         Choice
	exactPrecision bool // disallow representing values with excess precision
	maxValue       float64
}

// NewFloatFormat creates a format with the given exponent range
// [minExp, maxExp] (inclusive), fraction width and capability choices.
// exactPrecision forbids excess precision: when set, Convert never admits
// values finer than the format can represent.
//
// Panics if the exponent range is inverted or fractionBits is negative:
// a malformed format is a programming error, not an input condition.
func NewFloatFormat(minExp, maxExp, fractionBits int, exactPrecision bool, hasSubnormal, hasInf, hasNaN Choice) FloatFormat {
	if minExp > maxExp {
		panic(fmt.Sprintf("interval: inverted exponent range [%d, %d]", minExp, maxExp))
	}
	if fractionBits < 0 {
		panic(fmt.Sprintf("interval: negative fraction width %d", fractionBits))
	}
	return FloatFormat{
		minExp:         minExp,
		maxExp:         maxExp,
		fractionBits:   fractionBits,
		hasSubnormal:   hasSubnormal,
		hasInf:         hasInf,
		hasNaN:         hasNaN,
		exactPrecision: exactPrecision,
		maxValue:       computeMaxValue(maxExp, fractionBits),
	}
}

// Float64Format describes the native IEEE 754 binary64 format.
func Float64Format() FloatFormat {
	return NewFloatFormat(-1022, 1023, 52, true, Yes, Yes, Yes)
}

// Float32Format describes the IEEE 754 binary32 format.
func Float32Format() FloatFormat {
	return NewFloatFormat(-126, 127, 23, true, Yes, Yes, Yes)
}

// Float16Format describes a binary16-like format where subnormal,
// infinity and NaN support are left to the implementation.
func Float16Format() FloatFormat {
	return NewFloatFormat(-14, 15, 10, true, Maybe, Maybe, Maybe)
}

// computeMaxValue returns the largest finite value of the format:
// 2^maxExp * (2 - 2^-fractionBits).
func computeMaxValue(maxExp, fractionBits int) float64 {
	return math.Ldexp(1, maxExp) * (2.0 - math.Ldexp(1, -fractionBits))
}

// MinExp returns the exponent of the smallest normal value.
func (f FloatFormat) MinExp() int { return f.minExp }

// MaxExp returns the exponent of the largest finite value.
func (f FloatFormat) MaxExp() int { return f.maxExp }

// FractionBits returns the fraction width of the format.
func (f FloatFormat) FractionBits() int { return f.fractionBits }

// MaxValue returns the largest representable finite value.
func (f FloatFormat) MaxValue() float64 { return f.maxValue }

// HasSubnormal reports the subnormal-support choice of the format.
func (f FloatFormat) HasSubnormal() Choice { return f.hasSubnormal }

// HasInf reports the infinity-support choice of the format.
func (f FloatFormat) HasInf() Choice { return f.hasInf }

// HasNaN reports the NaN-support choice of the format.
func (f FloatFormat) HasNaN() Choice { return f.hasNaN }

// ULP returns the unit in the last place at x, scaled by count.
//
// Uses Harrison's convention: the ULP at an exact power of two is the
// spacing on the side closer to zero, i.e. it is computed at the
// representable value immediately below the boundary. The exponent is
// clamped to the subnormal floor so that ULP never vanishes near zero.
func (f FloatFormat) ULP(x float64, count float64) float64 {
	var exp int

	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(x, 0):
		return math.Ldexp(1, f.maxExp-f.fractionBits)
	case x == 0:
		exp = f.minExp
	default:
		// Frexp yields frac in [0.5, 1); shift to the [1, 2) convention.
		frac, e := math.Frexp(math.Abs(x))
		exp = e - 1
		if frac == 0.5 {
			// Harrison's ULP: spacing below the power-of-two boundary.
			exp--
		}
	}

	// ULP cannot be smaller than the subnormal quantum.
	exp = max(exp, f.minExp)

	return count * math.Ldexp(1, exp-f.fractionBits)
}

// exponentShift returns the number of significand bits available at a
// given value exponent. In the normal range that is fractionBits; inside
// the subnormal range precision decreases one bit per halving.
func (f FloatFormat) exponentShift(exp int) int {
	return f.fractionBits - max(f.minExp-exp, 0)
}

// Round rounds d to the closest representable value in the direction
// given by upward. Infinities and NaN are passed through unchanged;
// overflow behavior is handled by ClampValue, not here.
func (f FloatFormat) Round(d float64, upward bool) float64 {
	if math.IsInf(d, 0) || math.IsNaN(d) || d == 0 {
		return d
	}

	frac, e := math.Frexp(d)
	exp := e - 1 // exponent with significand in [1, 2)
	shift := f.exponentShift(exp)
	significand := math.Ldexp(frac, shift+1)

	var rounded float64
	if upward {
		rounded = math.Ceil(significand)
	} else {
		rounded = math.Floor(significand)
	}
	return math.Ldexp(rounded, exp-shift)
}

// ClampValue maps an exactly-representable-or-not real d to the interval
// of values a conforming implementation may store for it, accounting for
// underflow (subnormal choice) and overflow (infinity choice).
func (f FloatFormat) ClampValue(d float64) Interval {
	rSign := math.Copysign(1, d)
	negZero := math.Copysign(0, -1)

	switch {
	case d == 0 || math.IsNaN(d):
		return Exactly(d)
	case math.IsInf(d, 0) || math.Abs(d) > f.maxValue:
		// Out of finite range: either saturate to maxValue or overflow
		// to infinity, depending on the infinity choice.
		switch f.hasInf {
		case No:
			return Exactly(rSign * f.maxValue)
		case Yes:
			return Exactly(rSign * math.Inf(1))
		case Maybe:
			return NewInterval(rSign*f.maxValue, rSign*math.Inf(1))
		default:
			panic(fmt.Sprintf("interval: invalid infinity choice %d", f.hasInf))
		}
	case math.Abs(d) < math.Ldexp(1, f.minExp):
		// Subnormal range: the value may flush to (signed) zero.
		zero := 0.0
		if rSign < 0 {
			zero = negZero
		}
		switch f.hasSubnormal {
		case No:
			return Exactly(zero)
		case Yes:
			return Exactly(d)
		case Maybe:
			return NewInterval(zero, d)
		default:
			panic(fmt.Sprintf("interval: invalid subnormal choice %d", f.hasSubnormal))
		}
	default:
		return Exactly(d)
	}
}

// roundOutBound rounds a single interval bound outward. aboveZero selects
// which direction is "outward" for this bound. When roundUnderOverflow is
// set, a bound that overflows the finite range while rounding away from
// zero is clamped back to the signed maximum value, modeling a saturating
// implementation.
func (f FloatFormat) roundOutBound(d float64, upward, roundUnderOverflow bool) float64 {
	_, e := math.Frexp(d)
	if roundUnderOverflow && e-1 > f.maxExp && upward == (d < 0) {
		return math.Copysign(f.maxValue, d)
	}
	return f.Round(d, upward)
}

// RoundOut rounds both bounds of x outward (lo down, hi up) so the
// result contains every value x could round to in this format. NaN and
// emptiness are preserved. roundUnderOverflow selects saturating
// overflow handling as described at roundOutBound.
func (f FloatFormat) RoundOut(x Interval, roundUnderOverflow bool) Interval {
	res := x.NaNPart()
	if !x.IsEmpty() {
		res = res.Union(withNumbers(
			x.HasNaN(),
			f.roundOutBound(x.Lo(), false, roundUnderOverflow),
			f.roundOutBound(x.Hi(), true, roundUnderOverflow),
		))
	}
	return res
}

// Convert returns the interval of values a conforming implementation may
// produce when converting any value in x to this format.
//
// NaN inputs widen the result: if NaN is possibly supported the NaN flag
// is carried over, and if NaN is possibly unsupported the numeric part
// becomes unbounded (the implementation may produce anything for an
// unrepresentable NaN). If the format's precision is not exact, the
// original unrounded interval is admitted as well, since carrying excess
// precision is legal.
func (f FloatFormat) Convert(x Interval) Interval {
	res := Empty()
	tmp := x

	if x.HasNaN() {
		// If NaN might be supported, NaN is a legal result.
		if f.hasNaN != No {
			res = res.Union(NaN())
		}
		// If NaN might not be supported, any value is legal, subject to
		// the rounding and clamping below.
		if f.hasNaN != Yes {
			tmp = Unbounded(false)
		}
	}

	if !tmp.IsEmpty() {
		lo := f.Round(tmp.Lo(), false)
		hi := f.Round(tmp.Hi(), true)
		res = res.Union(f.ClampValue(lo)).Union(f.ClampValue(hi))
	}

	if !f.exactPrecision {
		// Carrying excess precision is legal; admit the unrounded input.
		res = res.Union(withNumbers(res.HasNaN(), tmp.Lo(), tmp.Hi()))
	}

	return res
}
