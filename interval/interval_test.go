package interval

import (
	"math"
	"testing"
)

func TestEmptyInterval(t *testing.T) {
	e := Empty()
	if !e.IsEmpty() {
		t.Fatal("Empty() is not empty")
	}
	if e.HasNaN() {
		t.Error("Empty() has NaN")
	}
	if e.ContainsValue(0) {
		t.Error("empty interval contains 0")
	}
}

func TestExactly(t *testing.T) {
	x := Exactly(3.5)
	if x.IsEmpty() {
		t.Fatal("Exactly(3.5) is empty")
	}
	if x.Lo() != 3.5 || x.Hi() != 3.5 {
		t.Errorf("Exactly(3.5) = [%v, %v]", x.Lo(), x.Hi())
	}
	if !x.ContainsValue(3.5) {
		t.Error("Exactly(3.5) does not contain 3.5")
	}

	n := Exactly(math.NaN())
	if !n.HasNaN() {
		t.Error("Exactly(NaN) has no NaN part")
	}
	if !n.NumberPart().IsEmpty() {
		t.Error("Exactly(NaN) has a number part")
	}
}

func TestNewIntervalOrdersBounds(t *testing.T) {
	x := NewInterval(2, -1)
	if x.Lo() != -1 || x.Hi() != 2 {
		t.Errorf("NewInterval(2, -1) = [%v, %v], want [-1, 2]", x.Lo(), x.Hi())
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Interval
		lo, hi float64
	}{
		{"disjoint", NewInterval(0, 1), NewInterval(3, 4), 0, 4},
		{"overlapping", NewInterval(0, 2), NewInterval(1, 3), 0, 3},
		{"with empty", NewInterval(-1, 1), Empty(), -1, 1},
		{"nested", NewInterval(-5, 5), NewInterval(-1, 1), -5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.a.Union(tt.b)
			if u.Lo() != tt.lo || u.Hi() != tt.hi {
				t.Errorf("union = [%v, %v], want [%v, %v]", u.Lo(), u.Hi(), tt.lo, tt.hi)
			}
		})
	}
}

func TestUnionPropagatesNaN(t *testing.T) {
	u := NewInterval(0, 1).Union(NaN())
	if !u.HasNaN() {
		t.Error("union with NaN interval lost the NaN flag")
	}
	if u.Lo() != 0 || u.Hi() != 1 {
		t.Errorf("number part changed: [%v, %v]", u.Lo(), u.Hi())
	}
}

func TestIntersection(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(1, 3)

	i := a.Intersection(b)
	if i.Lo() != 1 || i.Hi() != 2 {
		t.Errorf("intersection = [%v, %v], want [1, 2]", i.Lo(), i.Hi())
	}

	if !NewInterval(0, 1).Intersection(NewInterval(2, 3)).IsEmpty() {
		t.Error("disjoint intersection is not empty")
	}
}

func TestContains(t *testing.T) {
	outer := NewInterval(-1, 1)

	if !outer.Contains(NewInterval(-0.5, 0.5)) {
		t.Error("does not contain nested interval")
	}
	if !outer.Contains(Empty()) {
		t.Error("does not contain empty interval")
	}
	if outer.Contains(NewInterval(0, 2)) {
		t.Error("contains interval exceeding hi bound")
	}
	if outer.Contains(NaN()) {
		t.Error("NaN-free interval contains NaN interval")
	}
}

func TestIsFinite(t *testing.T) {
	if !NewInterval(-1, 1).IsFinite(10) {
		t.Error("[-1, 1] not finite within 10")
	}
	if NewInterval(-1, 11).IsFinite(10) {
		t.Error("[-1, 11] finite within 10")
	}
	if Unbounded(false).IsFinite(math.MaxFloat64) {
		t.Error("unbounded interval is finite")
	}
}

func TestUnbounded(t *testing.T) {
	u := Unbounded(true)
	if !u.HasNaN() {
		t.Error("Unbounded(true) has no NaN")
	}
	if !u.ContainsValue(math.Inf(1)) || !u.ContainsValue(math.Inf(-1)) {
		t.Error("unbounded interval missing infinities")
	}
}
