package vector_math

import (
	vk "github.com/goki/vulkan"
	"unsafe"
)

// Format reports the vertex attribute format matching the memory layout of Vec2.
func (Vec2) Format() vk.Format {
	return vk.FormatR32g32Sfloat
}

func (Vec3) Format() vk.Format {
	return vk.FormatR32g32b32Sfloat
}

func (Vec4) Format() vk.Format {
	return vk.FormatR32g32b32a32Sfloat
}

// Expected size in memory -> 48 Byte, every field is a run of float32 so no padding is inserted
type Vertex struct {
	Pos    Vec3 // 12 Byte
	Normal Vec3 // 12 Byte
	Color  Vec4 // 16 Byte
	UV     Vec2 // 8 Byte
}

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(Vertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	v := Vertex{}
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   v.Pos.Format(),
			Offset:   uint32(unsafe.Offsetof(v.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   v.Normal.Format(),
			Offset:   uint32(unsafe.Offsetof(v.Normal)),
		},
		{
			Location: 2,
			Binding:  0,
			Format:   v.Color.Format(),
			Offset:   uint32(unsafe.Offsetof(v.Color)),
		},
		{
			Location: 3,
			Binding:  0,
			Format:   v.UV.Format(),
			Offset:   uint32(unsafe.Offsetof(v.UV)),
		},
	}
}

// VertexBytes returns the raw bytes backing vs without copying.
// Mainly used to execute vk.Memcopy(..., src []byte) to move memory from CPU to GPU
func VertexBytes(vs []Vertex) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*int(unsafe.Sizeof(vs[0])))
}
