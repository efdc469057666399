package vector_math

import (
	"fmt"
	"io"
	"math"
	"unsafe"
)

type Vec2 struct {
	X, Y float32
}

func NewVec2(x float32, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Dot(w Vec2) float32 {
	return (v.X * w.X) + (v.Y * w.Y)
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{
		X: v.X - w.X,
		Y: v.Y - w.Y,
	}
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{
		X: v.X + w.X,
		Y: v.Y + w.Y,
	}
}

func (v Vec2) ScalarMul(factor float32) Vec2 {
	return Vec2{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

func (v Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64((v.X * v.X) + (v.Y * v.Y))))
}

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Magnitude()
	if l == 0 {
		return Vec2{}
	}
	return v.ScalarMul(1 / l)
}

// Data borrows the components of v in X, Y order. The View is only valid for
// as long as v is.
func (v *Vec2) Data() View {
	return View{s: unsafe.Slice(&v.X, 2)}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Print writes v followed by a newline to w.
func (v Vec2) Print(w io.Writer) {
	fmt.Fprintln(w, v.String())
}
