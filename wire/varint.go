package wire

// EncodeVarint appends v to buf using base-128 varint encoding: each byte
// carries 7 value bits low-to-high, with the high bit set on every byte
// but the last.
func EncodeVarint(buf *Buffer, v uint64) {
	for v >= 0x80 {
		buf.EmitByte(byte(v) | 0x80)
		v >>= 7
	}
	buf.EmitByte(byte(v))
}

// DecodeVarint reads a varint from buf's read cursor. A varint longer than
// 10 bytes (the most a 64-bit value ever needs) is malformed.
func DecodeVarint(buf *Buffer) (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; i < 10; i++ {
		b, ok := buf.ReadByte()
		if !ok {
			return 0, ErrTruncatedVarint
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, ErrMalformedVarint
}

// SkipVarint advances buf's read cursor past one varint without decoding
// its value.
func SkipVarint(buf *Buffer) error {
	for i := 0; i < 10; i++ {
		b, ok := buf.ReadByte()
		if !ok {
			return ErrTruncatedVarint
		}
		if b&0x80 == 0 {
			return nil
		}
	}
	return ErrMalformedVarint
}

// VarintSize returns the number of bytes EncodeVarint would write for v.
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// EncodeZigZag32 maps a signed 32-bit value to an unsigned one so that
// small-magnitude values (positive or negative) encode as small varints.
func EncodeZigZag32(v int32) uint64 {
	return uint64((uint32(v) << 1) ^ uint32(v>>31))
}

// DecodeZigZag32 is the inverse of EncodeZigZag32.
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// EncodeZigZag64 maps a signed 64-bit value to an unsigned one, as
// EncodeZigZag32 does for 32-bit values.
func EncodeZigZag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// DecodeZigZag64 is the inverse of EncodeZigZag64.
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// EncodeInt32 encodes v as a plain (non-zigzag) varint; used for the int32
// field type, which the wire format intentionally sign-extends to 64 bits
// rather than zigzag-encoding.
func EncodeInt32(buf *Buffer, v int32) { EncodeVarint(buf, uint64(int64(v))) }

// DecodeInt32 reads back a value written by EncodeInt32.
func DecodeInt32(buf *Buffer) (int32, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func EncodeInt64(buf *Buffer, v int64) { EncodeVarint(buf, uint64(v)) }

func DecodeInt64(buf *Buffer) (int64, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func EncodeUint32(buf *Buffer, v uint32) { EncodeVarint(buf, uint64(v)) }

func DecodeUint32(buf *Buffer) (uint32, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func EncodeUint64(buf *Buffer, v uint64) { EncodeVarint(buf, v) }

func DecodeUint64(buf *Buffer) (uint64, error) {
	return DecodeVarint(buf)
}

func EncodeSint32(buf *Buffer, v int32) { EncodeVarint(buf, EncodeZigZag32(v)) }

func DecodeSint32(buf *Buffer) (int32, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return DecodeZigZag32(v), nil
}

func EncodeSint64(buf *Buffer, v int64) { EncodeVarint(buf, EncodeZigZag64(v)) }

func DecodeSint64(buf *Buffer) (int64, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return DecodeZigZag64(v), nil
}

func EncodeBool(buf *Buffer, v bool) {
	if v {
		EncodeVarint(buf, 1)
	} else {
		EncodeVarint(buf, 0)
	}
}

func DecodeBool(buf *Buffer) (bool, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func EncodeEnum(buf *Buffer, v int32) { EncodeVarint(buf, uint64(uint32(v))) }

func DecodeEnum(buf *Buffer) (int32, error) {
	v, err := DecodeVarint(buf)
	if err != nil {
		return 0, err
	}
	return int32(uint32(v)), nil
}
