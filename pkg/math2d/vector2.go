// Package math2d provides a mutable two component vector and the column-major
// matrix layouts it can be transformed by.
//
// Every operation exists in two forms. Package functions allocate and return
// a new vector. Methods overwrite the receiver from explicit operands and
// return it, so hot loops can reuse a single vector:
//
//	sum := math2d.Add(a, b)  // new vector
//	acc.Add(a, b)            // overwrites acc
//	acc.AddEq(b)             // acc += b
//
// A receiver may alias any of its operands.
//
// Numeric edge cases are not errors. Projecting onto the zero vector or a
// homogeneous transform with a zero w term yields NaN or ±Inf.
package math2d

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Vector2 is a two component vector. Components are addressed as x/y, s/t or
// by index 0 and 1.
//
// The zero value is the zero vector and is ready to use. A Vector2 refers to
// its component storage, so a Vector2 must not be copied by assignment; use
// Copy or CopyOf. Concurrent reads are safe, including on the zero value;
// concurrent mutation is not.
type Vector2 struct {
	n *[2]float64
}

// New creates a vector with its own storage.
func New(x, y float64) *Vector2 {
	return &Vector2{n: &[2]float64{x, y}}
}

// FromSlice creates a vector from a copy of n. Any length other than two
// yields the zero vector.
func FromSlice(n []float64) *Vector2 {
	return new(Vector2).Define(n)
}

// Wrap creates a vector backed by the caller's array. Writes through the
// vector land in n and the other way around. A nil n gets fresh storage.
func Wrap(n *[2]float64) *Vector2 {
	return new(Vector2).Adopt(n)
}

// Define replaces the storage with a copy of n, detaching the vector from
// any array it was wrapping. Any length other than two yields the zero vector.
func (v *Vector2) Define(n []float64) *Vector2 {
	c := new([2]float64)
	if len(n) == 2 {
		c[0], c[1] = n[0], n[1]
	}
	v.n = c
	return v
}

// Adopt makes n the vector's storage, as Wrap does.
func (v *Vector2) Adopt(n *[2]float64) *Vector2 {
	if n == nil {
		n = new([2]float64)
	}
	v.n = n
	return v
}

// c returns the storage, allocating it for a zero value vector.
func (v *Vector2) c() *[2]float64 {
	if v.n == nil {
		v.n = new([2]float64)
	}
	return v.n
}

// zero backs reads of a zero value vector that has no storage yet. It is
// never written.
var zero [2]float64

// r returns the storage for reading without allocating it.
func (v *Vector2) r() *[2]float64 {
	if v.n == nil {
		return &zero
	}
	return v.n
}

// X returns the x component.
func (v *Vector2) X() float64 { return v.r()[0] }

// Y returns the y component.
func (v *Vector2) Y() float64 { return v.r()[1] }

// S returns the s component, an alias of x.
func (v *Vector2) S() float64 { return v.X() }

// T returns the t component, an alias of y.
func (v *Vector2) T() float64 { return v.Y() }

// SetX sets the x component.
func (v *Vector2) SetX(x float64) *Vector2 {
	v.c()[0] = x
	return v
}

// SetY sets the y component.
func (v *Vector2) SetY(y float64) *Vector2 {
	v.c()[1] = y
	return v
}

// SetS sets the s component, an alias of x.
func (v *Vector2) SetS(s float64) *Vector2 { return v.SetX(s) }

// SetT sets the t component, an alias of y.
func (v *Vector2) SetT(t float64) *Vector2 { return v.SetY(t) }

// At returns the component at index i. It panics unless i is 0 or 1.
func (v *Vector2) At(i int) float64 { return v.r()[i] }

// SetAt sets the component at index i. It panics unless i is 0 or 1.
func (v *Vector2) SetAt(i int, f float64) *Vector2 {
	v.c()[i] = f
	return v
}

// Components returns a copy of both components.
func (v *Vector2) Components() [2]float64 { return *v.r() }

// Storage returns the array backing the vector.
func (v *Vector2) Storage() *[2]float64 { return v.c() }

// Norm returns the length of the vector.
func (v *Vector2) Norm() float64 {
	n := v.r()
	return math.Sqrt(n[0]*n[0] + n[1]*n[1])
}

// NormSquared returns the squared length (no sqrt).
func (v *Vector2) NormSquared() float64 {
	n := v.r()
	return n[0]*n[0] + n[1]*n[1]
}

// Value returns the norm, for callers that want the vector as a magnitude.
func (v *Vector2) Value() float64 { return v.Norm() }

// Equal reports whether v and w are the same vector or have exactly equal
// components.
func (v *Vector2) Equal(w *Vector2) bool { return Equal(v, w) }

// String returns the vector with three decimals, e.g. "[Vector2](1.000 0.000)".
func (v *Vector2) String() string { return v.FormatDigits(3) }

// FormatDigits is String with the given number of decimals.
func (v *Vector2) FormatDigits(digits int) string {
	if digits < 0 {
		digits = 0
	}
	n := v.r()
	var sb strings.Builder
	sb.WriteString("[Vector2](")
	sb.WriteString(fixed(n[0], digits))
	sb.WriteByte(' ')
	sb.WriteString(fixed(n[1], digits))
	sb.WriteByte(')')
	return sb.String()
}

// fixed formats f with digits decimals the way JavaScript's toFixed does.
// Exact ties round away from zero and negative zero prints as zero.
// Infinities print as Infinity; magnitudes from 1e21 up use exponent form.
func fixed(f float64, digits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	sign := ""
	if f < 0 {
		sign = "-"
	}
	f = math.Abs(f)
	if f >= 1e21 {
		return sign + strconv.FormatFloat(f, 'g', -1, 64)
	}
	if exactDigits(f) == digits+1 {
		// f sits on a tie only if its last exact decimal is a 5
		if s := strconv.FormatFloat(f, 'f', digits+1, 64); s[len(s)-1] == '5' {
			f = math.Nextafter(f, math.Inf(1))
		}
	}
	return sign + strconv.FormatFloat(f, 'f', digits, 64)
}

// exactDigits returns how many decimals it takes to print f exactly.
func exactDigits(f float64) int {
	frac, exp := math.Frexp(f)
	m := uint64(frac * (1 << 53))
	if m == 0 {
		return 0
	}
	if e := exp - 53 + bits.TrailingZeros64(m); e < 0 {
		return -e
	}
	return 0
}
