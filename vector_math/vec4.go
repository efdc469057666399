package vector_math

import (
	"fmt"
	"io"
	"math"
	"unsafe"
)

// Vec4 is mostly used for homogeneous coordinates and RGBA colors.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec4(x float32, y float32, z float32, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func (v Vec4) Dot(w Vec4) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z) + (v.W * w.W)
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
		W: v.W - w.W,
	}
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
		W: v.W + w.W,
	}
}

func (v Vec4) ScalarMul(factor float32) Vec4 {
	return Vec4{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
		W: v.W * factor,
	}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Truncate drops the W component without a perspective divide.
func (v Vec4) Truncate() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4) Magnitude() float32 {
	return float32(math.Sqrt(float64((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z) + (v.W * v.W))))
}

func (v Vec4) Normalize() Vec4 {
	l := v.Magnitude()
	if l == 0 {
		return Vec4{}
	}
	return v.ScalarMul(1 / l)
}

// Data borrows the components of v in X, Y, Z, W order without copying.
func (v *Vec4) Data() View {
	return View{s: unsafe.Slice(&v.X, 4)}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Print writes v followed by a newline to w.
func (v Vec4) Print(w io.Writer) {
	fmt.Fprintln(w, v.String())
}
