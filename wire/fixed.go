package wire

import (
	"encoding/binary"
	"math"
)

// EncodeFixed32 appends v as 4 little-endian bytes.
func EncodeFixed32(buf *Buffer, v uint32) {
	buf.EnsureSpace(4)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.EmitBytes(tmp[:])
}

// DecodeFixed32 reads 4 little-endian bytes from buf's read cursor.
func DecodeFixed32(buf *Buffer) (uint32, error) {
	b, ok := buf.ReadN(4)
	if !ok {
		return 0, ErrTruncatedSubmessage
	}
	return binary.LittleEndian.Uint32(b), nil
}

// EncodeFixed64 appends v as 8 little-endian bytes.
func EncodeFixed64(buf *Buffer, v uint64) {
	buf.EnsureSpace(8)
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	buf.EmitBytes(tmp[:])
}

// DecodeFixed64 reads 8 little-endian bytes from buf's read cursor.
func DecodeFixed64(buf *Buffer) (uint64, error) {
	b, ok := buf.ReadN(8)
	if !ok {
		return 0, ErrTruncatedSubmessage
	}
	return binary.LittleEndian.Uint64(b), nil
}

func EncodeSfixed32(buf *Buffer, v int32) { EncodeFixed32(buf, uint32(v)) }

func DecodeSfixed32(buf *Buffer) (int32, error) {
	v, err := DecodeFixed32(buf)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func EncodeSfixed64(buf *Buffer, v int64) { EncodeFixed64(buf, uint64(v)) }

func DecodeSfixed64(buf *Buffer) (int64, error) {
	v, err := DecodeFixed64(buf)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// EncodeFloat32 encodes v by reinterpreting its IEEE-754 bits as fixed32.
func EncodeFloat32(buf *Buffer, v float32) { EncodeFixed32(buf, math.Float32bits(v)) }

func DecodeFloat32(buf *Buffer) (float32, error) {
	v, err := DecodeFixed32(buf)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// EncodeFloat64 encodes v by reinterpreting its IEEE-754 bits as fixed64.
func EncodeFloat64(buf *Buffer, v float64) { EncodeFixed64(buf, math.Float64bits(v)) }

func DecodeFloat64(buf *Buffer) (float64, error) {
	v, err := DecodeFixed64(buf)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
