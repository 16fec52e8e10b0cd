package numeric

import (
	"math"
	"testing"
)

func TestIntegerCompareAntisymmetricAndReflexive(t *testing.T) {
	pairs := [][2]int64{{1, 2}, {-5, 5}, {0, 0}, {100, -100}}
	for _, p := range pairs {
		a, b := NewInteger(p[0]), NewInteger(p[1])
		if a.Compare(a) != Equal {
			t.Errorf("Compare(%d,%d) reflexive failed", p[0], p[0])
		}
		ab := a.Compare(b)
		ba := b.Compare(a)
		switch ab {
		case Equal:
			if ba != Equal {
				t.Errorf("%d vs %d: expected symmetric Equal", p[0], p[1])
			}
		case Less:
			if ba != Greater {
				t.Errorf("%d vs %d: expected Greater on flip", p[0], p[1])
			}
		case Greater:
			if ba != Less {
				t.Errorf("%d vs %d: expected Less on flip", p[0], p[1])
			}
		}
	}
}

func TestIntegerSmallestSize(t *testing.T) {
	cases := []struct {
		v    int64
		want SmallestSize
	}{
		{0, Size1Bit},
		{1, Size1Bit},
		{-1, Size8Signed},
		{200, Size8Unsigned},
		{-200, Size16Signed},
		{40000, Size16Unsigned},
		{-40000, Size32Signed},
		{5000000000, Size64},
	}
	for _, c := range cases {
		if got := NewInteger(c.v).SmallestSize(); got != c.want {
			t.Errorf("SmallestSize(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestFloatCompareOrderedCases(t *testing.T) {
	a, b := NewFloat(1.0), NewFloat(2.0)
	if a.Compare(b) != Less {
		t.Errorf("1.0 vs 2.0 = %v, want Less", a.Compare(b))
	}
	if b.Compare(a) != Greater {
		t.Errorf("2.0 vs 1.0 = %v, want Greater", b.Compare(a))
	}
	if a.Compare(a) != Equal {
		t.Errorf("1.0 vs 1.0 = %v, want Equal", a.Compare(a))
	}
}

func TestFloatCompareNaNIsUnordered(t *testing.T) {
	nan := NaN()
	x := NewFloat(3.14)
	if nan.Compare(x) != Unordered {
		t.Errorf("NaN vs x = %v, want Unordered", nan.Compare(x))
	}
	if x.Compare(nan) != Unordered {
		t.Errorf("x vs NaN = %v, want Unordered", x.Compare(nan))
	}
	if nan.Compare(nan) != Unordered {
		t.Errorf("NaN vs NaN = %v, want Unordered", nan.Compare(nan))
	}
}

func TestFloatNearlyEqual(t *testing.T) {
	x := NewFloat(1.0)
	if !x.NearlyEqual(x, DefaultEpsilon) {
		t.Errorf("x nearly_equal x should be true")
	}

	posInf := Infinity(false)
	negInf := Infinity(true)
	if posInf.NearlyEqual(negInf, DefaultEpsilon) {
		t.Errorf("+Inf nearly_equal -Inf should be false")
	}

	a := NewFloat(1.0000001)
	b := NewFloat(1.0000002)
	if !a.NearlyEqual(b, DefaultEpsilon) {
		t.Errorf("1.0000001 nearly_equal 1.0000002 should be true at default epsilon")
	}
}

func TestFloatClassifiedInfinityAndPredicates(t *testing.T) {
	posInf := Infinity(false)
	negInf := Infinity(true)
	finite := NewFloat(0)

	if posInf.ClassifiedInfinity() != 1 {
		t.Errorf("classified_infinity(+Inf) = %d, want 1", posInf.ClassifiedInfinity())
	}
	if negInf.ClassifiedInfinity() != -1 {
		t.Errorf("classified_infinity(-Inf) = %d, want -1", negInf.ClassifiedInfinity())
	}
	if finite.ClassifiedInfinity() != 0 {
		t.Errorf("classified_infinity(0) = %d, want 0", finite.ClassifiedInfinity())
	}

	if !posInf.IsPositiveInfinity() || posInf.IsNegativeInfinity() {
		t.Errorf("IsPositiveInfinity/IsNegativeInfinity wrong for +Inf")
	}
	if !negInf.IsNegativeInfinity() || negInf.IsPositiveInfinity() {
		t.Errorf("IsPositiveInfinity/IsNegativeInfinity wrong for -Inf")
	}
	if !NaN().IsNaN() {
		t.Errorf("IsNaN() should be true for NaN()")
	}
	if math.IsNaN(finite.Get()) {
		t.Errorf("finite value should not report NaN from Get()")
	}
}
