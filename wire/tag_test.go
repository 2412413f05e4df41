package wire

import (
	"errors"
	"testing"
)

func TestMakeParseTag(t *testing.T) {
	cases := []struct {
		number int32
		wt     WireType
	}{
		{1, WireVarint},
		{15, WireLengthDelimited},
		{16, WireFixed64},
		{536870911, WireFixed32}, // 2^29 - 1
	}
	for _, c := range cases {
		tag := MakeTag(c.number, c.wt)
		number, wt := ParseTag(tag)
		if number != c.number || wt != c.wt {
			t.Errorf("MakeTag/ParseTag(%d, %d) round trip got (%d, %d)", c.number, c.wt, number, wt)
		}
	}
}

func TestEncodeDecodeTag(t *testing.T) {
	buf := NewBuffer()
	EncodeTag(buf, 5, WireVarint)
	read := NewBufferFromBytes(buf.Bytes())
	number, wt, err := DecodeTag(read)
	if err != nil {
		t.Fatal(err)
	}
	if number != 5 || wt != WireVarint {
		t.Errorf("got (%d, %d)", number, wt)
	}
}

func TestEncodeTagFieldNumberOutOfRange(t *testing.T) {
	buf := NewBuffer()
	EncodeTag(buf, 1<<29, WireVarint)
	read := NewBufferFromBytes(buf.Bytes())
	if _, _, err := DecodeTag(read); !errors.Is(err, ErrFieldNumberOutOfRange) {
		t.Errorf("got %v, want ErrFieldNumberOutOfRange", err)
	}
}

func TestSkipUnknownVarint(t *testing.T) {
	buf := NewBuffer()
	EncodeVarint(buf, 12345)
	read := NewBufferFromBytes(buf.Bytes())
	skipped, err := SkipUnknown(read, 7, WireVarint)
	if err != nil {
		t.Fatal(err)
	}
	if !read.Done() {
		t.Errorf("expected buffer exhausted after skip")
	}
	if len(skipped) == 0 {
		t.Errorf("expected non-empty skipped bytes")
	}
}

func TestSkipUnknownGroup(t *testing.T) {
	buf := NewBuffer()
	// nested group: field 9 contains a varint field 1, then END_GROUP(9)
	EncodeTag(buf, 1, WireVarint)
	EncodeVarint(buf, 42)
	EncodeTag(buf, 9, WireEndGroup)

	read := NewBufferFromBytes(buf.Bytes())
	if _, err := SkipUnknown(read, 9, WireStartGroup); err != nil {
		t.Fatal(err)
	}
	if !read.Done() {
		t.Errorf("expected buffer exhausted after skipping group")
	}
}

func TestSkipUnknownGroupMismatch(t *testing.T) {
	buf := NewBuffer()
	EncodeTag(buf, 3, WireEndGroup)
	read := NewBufferFromBytes(buf.Bytes())
	if _, err := SkipUnknown(read, 9, WireStartGroup); !errors.Is(err, ErrGroupMismatch) {
		t.Errorf("got %v, want ErrGroupMismatch", err)
	}
}

func TestBareEndGroupIsMismatch(t *testing.T) {
	buf := NewBuffer()
	EncodeTag(buf, 9, WireEndGroup)
	read := NewBufferFromBytes(buf.Bytes())
	if _, err := SkipUnknown(read, 9, WireEndGroup); !errors.Is(err, ErrGroupMismatch) {
		t.Errorf("got %v, want ErrGroupMismatch", err)
	}
}
