package vector_math

import (
	"unsafe"

	vk "github.com/goki/vulkan"
)

// View is a read-only window onto the components of a vector. It aliases the
// vector's memory, so writes to the vector are visible through it and the
// View must not outlive the vector it came from.
type View struct {
	s []float32
}

func (w View) Len() int {
	return len(w.s)
}

func (w View) At(i int) float32 {
	return w.s[i]
}

// AppendTo copies the components onto the end of dst.
func (w View) AppendTo(dst []float32) []float32 {
	return append(dst, w.s...)
}

// bytes reinterprets the components as raw bytes in host byte order.
// It aliases the vector, only CopyTo may use it.
func (w View) bytes() []byte {
	if len(w.s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&w.s[0])), len(w.s)*4)
}

// CopyTo moves the components into mapped device memory and reports the
// number of bytes written.
func (w View) CopyTo(dst unsafe.Pointer) int {
	return vk.Memcopy(dst, w.bytes())
}
