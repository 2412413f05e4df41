package wire

import "unicode/utf8"

// EncodeBytes appends data as a length-delimited payload: a varint length
// prefix followed by the raw bytes.
func EncodeBytes(buf *Buffer, data []byte) {
	EncodeVarint(buf, uint64(len(data)))
	buf.EmitBytes(data)
}

// DecodeBytes reads a length-delimited payload and returns a copy, so the
// result outlives the decode buffer.
func DecodeBytes(buf *Buffer) ([]byte, error) {
	length, err := DecodeVarint(buf)
	if err != nil {
		return nil, err
	}
	raw, ok := buf.ReadN(int(length))
	if !ok {
		return nil, ErrTruncatedSubmessage
	}
	data := make([]byte, len(raw))
	copy(data, raw)
	return data, nil
}

// DecodeBytesShared reads a length-delimited payload without copying; the
// returned slice aliases buf's backing array and must not outlive it.
func DecodeBytesShared(buf *Buffer) ([]byte, error) {
	length, err := DecodeVarint(buf)
	if err != nil {
		return nil, err
	}
	raw, ok := buf.ReadN(int(length))
	if !ok {
		return nil, ErrTruncatedSubmessage
	}
	return raw, nil
}

// EncodeString appends s as a length-delimited payload.
func EncodeString(buf *Buffer, s string) {
	EncodeVarint(buf, uint64(len(s)))
	buf.EmitBytes([]byte(s))
}

// DecodeString reads a length-delimited payload and validates it is
// well-formed UTF-8, as proto2's string field type requires.
func DecodeString(buf *Buffer) (string, error) {
	raw, err := DecodeBytesShared(buf)
	if err != nil {
		return "", err
	}
	if !isASCII(raw) && !utf8.Valid(raw) {
		return "", ErrInvalidUtf8
	}
	return string(raw), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// BytesSize returns the encoded size of a length-delimited payload holding
// n raw bytes.
func BytesSize(n int) int {
	return VarintSize(uint64(n)) + n
}
