package vector_math

import (
	"fmt"
	"io"
	"math"
	"unsafe"
)

type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x float32, y float32, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vec3) Dot(w Vec3) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vec3) ScalarMul(factor float32) Vec3 {
	return Vec3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Extend lifts v into homogeneous coordinates, w = 1 for points and w = 0 for directions.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vec3) Magnitude() float32 {
	return float32(math.Sqrt(float64((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))))
}

// Normalize returns a unit vector pointing in the direction of v, or the zero
// vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Magnitude()
	if l == 0 {
		return Vec3{}
	}
	return v.ScalarMul(1 / l)
}

// Data borrows the components of v in X, Y, Z order without copying.
func (v *Vec3) Data() View {
	return View{s: unsafe.Slice(&v.X, 3)}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Print writes v followed by a newline to w.
func (v Vec3) Print(w io.Writer) {
	fmt.Fprintln(w, v.String())
}
