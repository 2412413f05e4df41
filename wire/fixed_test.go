package wire

import (
	"math"
	"testing"
)

func TestFixed32RoundTrip(t *testing.T) {
	buf := NewBuffer()
	EncodeFixed32(buf, 0xDEADBEEF)
	read := NewBufferFromBytes(buf.Bytes())
	got, err := DecodeFixed32(read)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xDEADBEEF {
		t.Errorf("got %x", got)
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	buf := NewBuffer()
	EncodeFixed64(buf, 0x0102030405060708)
	read := NewBufferFromBytes(buf.Bytes())
	got, err := DecodeFixed64(read)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x0102030405060708 {
		t.Errorf("got %x", got)
	}
}

func TestFloatDoubleRoundTrip(t *testing.T) {
	f := float32(3.14159)
	buf := NewBuffer()
	EncodeFloat32(buf, f)
	read := NewBufferFromBytes(buf.Bytes())
	gotF, err := DecodeFloat32(read)
	if err != nil {
		t.Fatal(err)
	}
	if gotF != f {
		t.Errorf("got %v, want %v", gotF, f)
	}

	d := math.Pi
	buf2 := NewBuffer()
	EncodeFloat64(buf2, d)
	read2 := NewBufferFromBytes(buf2.Bytes())
	gotD, err := DecodeFloat64(read2)
	if err != nil {
		t.Fatal(err)
	}
	if gotD != d {
		t.Errorf("got %v, want %v", gotD, d)
	}
}

func TestSfixedRoundTrip(t *testing.T) {
	buf := NewBuffer()
	EncodeSfixed32(buf, -123456)
	read := NewBufferFromBytes(buf.Bytes())
	got, err := DecodeSfixed32(read)
	if err != nil {
		t.Fatal(err)
	}
	if got != -123456 {
		t.Errorf("got %d", got)
	}

	buf2 := NewBuffer()
	EncodeSfixed64(buf2, -9876543210)
	read2 := NewBufferFromBytes(buf2.Bytes())
	got64, err := DecodeSfixed64(read2)
	if err != nil {
		t.Fatal(err)
	}
	if got64 != -9876543210 {
		t.Errorf("got %d", got64)
	}
}
