package sprig

import (
	"fmt"
	"unsafe"
)

// GeometryBuffer is a fixed-capacity byte buffer with float32 and uint32 views
// aliasing the same memory. Vertex attributes of mixed interpretation
// (positions as float, packed UVs and tints as uint) are written at the same
// word offsets without copies or conversions.
type GeometryBuffer struct {
	Bytes   []byte
	Float32 []float32
	Uint32  []uint32
}

// NewGeometryBuffer allocates a buffer of size bytes. size must be a
// non-negative multiple of 4.
func NewGeometryBuffer(size int) *GeometryBuffer {
	if size < 0 || size%4 != 0 {
		panic(fmt.Sprintf("sprig: geometry buffer size %d is not a non-negative multiple of 4", size))
	}
	// Backing the bytes with a []uint32 guarantees 4-byte alignment for the
	// word views.
	words := make([]uint32, size/4)
	return geometryOver(words)
}

// View returns a buffer aliasing length bytes of g starting at offset.
// Both must be multiples of 4 and lie within g; anything else panics.
func (g *GeometryBuffer) View(offset, length int) *GeometryBuffer {
	if offset < 0 || length < 0 || offset+length > len(g.Bytes) {
		panic(fmt.Sprintf("sprig: geometry view [%d:%d] out of range (size %d)", offset, offset+length, len(g.Bytes)))
	}
	if offset%4 != 0 || length%4 != 0 {
		panic(fmt.Sprintf("sprig: geometry view [%d:%d] is not word aligned", offset, offset+length))
	}
	return geometryOver(g.Uint32[offset/4 : (offset+length)/4 : (offset+length)/4])
}

// Len returns the buffer size in bytes.
func (g *GeometryBuffer) Len() int {
	return len(g.Bytes)
}

func geometryOver(words []uint32) *GeometryBuffer {
	if len(words) == 0 {
		return &GeometryBuffer{Bytes: []byte{}, Float32: []float32{}, Uint32: words}
	}
	p := unsafe.Pointer(&words[0])
	return &GeometryBuffer{
		Bytes:   unsafe.Slice((*byte)(p), len(words)*4),
		Float32: unsafe.Slice((*float32)(p), len(words)),
		Uint32:  words,
	}
}
