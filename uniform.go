package affine

import (
	"encoding/binary"
	"math"
)

// UniformSize is the size in bytes of the encoding written by AppendUniform.
const UniformSize = 64

// Mat4 expands m to a 4x4 row-major matrix for GPU shaders:
//
//	a b 0 c
//	d e 0 f
//	0 0 1 0
//	0 0 0 1
func (m Matrix) Mat4() [16]float32 {
	return [16]float32{
		m.A, m.B, 0, m.C,
		m.D, m.E, 0, m.F,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// AppendUniform appends the little-endian encoding of m.Mat4() to buf and
// returns the extended buffer. UniformSize bytes are appended.
func (m Matrix) AppendUniform(buf []byte) []byte {
	for _, v := range m.Mat4() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}
