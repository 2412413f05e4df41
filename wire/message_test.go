package wire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
)

func newTestRegistry(t *testing.T, s *schema.Schema) *registry.Registry {
	t.Helper()
	reg := registry.NewRegistry()
	if err := reg.RegisterSchema(s); err != nil {
		t.Fatalf("RegisterSchema: %v", err)
	}
	return reg
}

func personSchemaForTest() *schema.Schema {
	address := &schema.Message{
		Name: "Address",
		Fields: []*schema.Field{
			{Name: "city", Number: 1, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
		},
		Kind: schema.KindRegularMessage,
	}
	person := &schema.Message{
		Name: "Person",
		Fields: []*schema.Field{
			{Name: "name", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "id", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32}},
			{Name: "tags", Number: 3, Label: schema.LabelRepeated, Packed: true, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32}},
			{Name: "address", Number: 4, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindMessage, MessageType: "test.Address"}},
			{
				Name: "labels", Number: 5, Label: schema.LabelRepeated,
				Type: schema.FieldType{
					Kind:     schema.KindMap,
					MapKey:   &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString},
					MapValue: &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString},
				},
			},
		},
		ExtensionRanges: []schema.ExtensionRange{{From: 100, To: 199}},
		Kind:            schema.KindRegularMessage,
	}
	ext := &schema.Field{
		Name: "badge", Number: 100, Label: schema.LabelOptional,
		Type:           schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32},
		ExtendsMessage: "test.Person",
	}
	return &schema.Schema{
		Name:       "person.proto",
		Syntax:     "proto2",
		Package:    "test",
		Messages:   []*schema.Message{person, address},
		Extensions: []*schema.Field{ext},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, err := reg.GetMessage("test.Person")
	if err != nil {
		t.Fatal(err)
	}

	rec := NewRecord()
	rec.Fields["name"] = "Ada"
	rec.Fields["id"] = int32(42)
	rec.Fields["tags"] = []int32{1, 2, 3}
	addr := NewRecord()
	addr.Fields["city"] = "London"
	rec.Fields["address"] = addr
	rec.Fields["labels"] = map[string]interface{}{"role": "engineer"}
	if err := rec.Extensions.Set(person, 100, int32(7)); err != nil {
		t.Fatalf("Set extension: %v", err)
	}

	data, err := EncodeMessage(rec, person, reg)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	decoded, err := DecodeMessage(data, person, reg)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}

	if decoded.Fields["name"] != "Ada" {
		t.Errorf("name = %v", decoded.Fields["name"])
	}
	if decoded.Fields["id"] != int32(42) {
		t.Errorf("id = %v", decoded.Fields["id"])
	}
	if diff := cmp.Diff([]interface{}{int32(1), int32(2), int32(3)}, decoded.Fields["tags"]); diff != "" {
		t.Errorf("tags mismatch:\n%s", diff)
	}
	decodedAddr, ok := decoded.Fields["address"].(*Record)
	if !ok || decodedAddr.Fields["city"] != "London" {
		t.Errorf("address = %#v", decoded.Fields["address"])
	}
	labels, ok := decoded.Fields["labels"].(map[interface{}]interface{})
	if !ok || labels["role"] != "engineer" {
		t.Errorf("labels = %#v", decoded.Fields["labels"])
	}
	badge, ok := decoded.Extensions.Get(person, 100)
	if !ok || badge != int32(7) {
		t.Errorf("badge extension = (%v, %v)", badge, ok)
	}
}

func TestMissingRequiredFieldErrors(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	rec := NewRecord()
	rec.Fields["id"] = int32(1)

	if _, err := EncodeMessage(rec, person, reg); !errors.Is(err, ErrMissingRequired) {
		t.Errorf("encode: got %v, want ErrMissingRequired", err)
	}

	buf := NewBuffer()
	EncodeTag(buf, 2, WireVarint)
	EncodeInt32(buf, 1)
	if _, err := DecodeMessage(buf.Bytes(), person, reg); !errors.Is(err, ErrMissingRequired) {
		t.Errorf("decode: got %v, want ErrMissingRequired", err)
	}
}

func TestPackedAndUnpackedDecodeEqual(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	packed := NewBuffer()
	EncodeTag(packed, 1, WireLengthDelimited)
	EncodeString(packed, "Ada")
	EncodeTag(packed, 3, WireLengthDelimited)
	mark := packed.ReserveLengthPrefix()
	start := packed.Len()
	EncodeInt32(packed, 1)
	EncodeInt32(packed, 2)
	EncodeInt32(packed, 3)
	packed.RewritePrefix(mark, packed.Len()-start)

	unpacked := NewBuffer()
	EncodeTag(unpacked, 1, WireLengthDelimited)
	EncodeString(unpacked, "Ada")
	for _, v := range []int32{1, 2, 3} {
		EncodeTag(unpacked, 3, WireVarint)
		EncodeInt32(unpacked, v)
	}

	decodedPacked, err := DecodeMessage(packed.Bytes(), person, reg)
	if err != nil {
		t.Fatal(err)
	}
	decodedUnpacked, err := DecodeMessage(unpacked.Bytes(), person, reg)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(decodedPacked.Fields["tags"], decodedUnpacked.Fields["tags"]); diff != "" {
		t.Errorf("packed vs unpacked mismatch:\n%s", diff)
	}
}

func TestUnknownFieldRoundTrip(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	buf := NewBuffer()
	EncodeTag(buf, 1, WireLengthDelimited)
	EncodeString(buf, "Ada")
	EncodeTag(buf, 999, WireVarint) // unknown field, not in schema
	EncodeVarint(buf, 12345)

	decoded, err := DecodeMessage(buf.Bytes(), person, reg)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Unknown) != 1 || decoded.Unknown[0].Number != 999 {
		t.Fatalf("got unknown fields %#v", decoded.Unknown)
	}

	reencoded, err := EncodeMessage(decoded, person, reg)
	if err != nil {
		t.Fatal(err)
	}
	if string(reencoded) != string(buf.Bytes()) {
		t.Errorf("re-encoding should replay unknown bytes verbatim:\ngot  %x\nwant %x", reencoded, buf.Bytes())
	}
}

func enumSchemaForTest() *schema.Schema {
	colorEnum := &schema.Enum{
		Name: "Color",
		Values: []*schema.EnumValue{
			{Name: "RED", Number: 0},
			{Name: "BLUE", Number: 1},
		},
	}
	shape := &schema.Message{
		Name: "Shape",
		Fields: []*schema.Field{
			{Name: "color", Number: 1, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindEnum, EnumType: "test.Color"}},
		},
		Kind: schema.KindRegularMessage,
	}
	return &schema.Schema{
		Name: "shape.proto", Syntax: "proto2", Package: "test",
		Messages: []*schema.Message{shape},
		Enums:    []*schema.Enum{colorEnum},
	}
}

func TestDecodeUnknownEnumNumberNeverErrors(t *testing.T) {
	reg := newTestRegistry(t, enumSchemaForTest())
	shape, _ := reg.GetMessage("test.Shape")

	buf := NewBuffer()
	EncodeTag(buf, 1, WireVarint)
	EncodeEnum(buf, 99) // not declared on Color

	decoded, err := DecodeMessage(buf.Bytes(), shape, reg)
	if err != nil {
		t.Fatalf("decode of unknown enum number should not error: %v", err)
	}
	if decoded.Fields["color"] != int32(99) {
		t.Errorf("got %v, want raw int32(99)", decoded.Fields["color"])
	}
}

func TestEncodeUnknownEnumSymbolErrors(t *testing.T) {
	reg := newTestRegistry(t, enumSchemaForTest())
	shape, _ := reg.GetMessage("test.Shape")

	rec := NewRecord()
	rec.Fields["color"] = "PURPLE"

	if _, err := EncodeMessage(rec, shape, reg); !errors.Is(err, ErrUnknownEnumValue) {
		t.Errorf("got %v, want ErrUnknownEnumValue", err)
	}
}

func groupSchemaForTest() *schema.Schema {
	phone := &schema.Message{
		Name: "PhoneNumber",
		Fields: []*schema.Field{
			{Name: "number", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
		},
		Kind:             schema.KindGroupMessage,
		GroupFieldNumber: 2,
	}
	person := &schema.Message{
		Name: "Person",
		Fields: []*schema.Field{
			{Name: "name", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "phone", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindGroup, MessageType: "test.PhoneNumber"}},
		},
		Kind: schema.KindRegularMessage,
	}
	return &schema.Schema{
		Name: "group.proto", Syntax: "proto2", Package: "test",
		Messages: []*schema.Message{person, phone},
	}
}

func TestGroupEncodeDecodeRoundTrip(t *testing.T) {
	reg := newTestRegistry(t, groupSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	rec := NewRecord()
	rec.Fields["name"] = "Ada"
	phone := NewRecord()
	phone.Fields["number"] = "555-1234"
	rec.Fields["phone"] = phone

	data, err := EncodeMessage(rec, person, reg)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeMessage(data, person, reg)
	if err != nil {
		t.Fatal(err)
	}
	decodedPhone, ok := decoded.Fields["phone"].(*Record)
	if !ok || decodedPhone.Fields["number"] != "555-1234" {
		t.Errorf("got %#v", decoded.Fields["phone"])
	}
}

func scalarSchemaForTest() *schema.Schema {
	msg := &schema.Message{
		Name: "Msg",
		Fields: []*schema.Field{
			{Name: "s", Number: 1, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeSint64}},
			{Name: "u", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeUint64}},
			{Name: "i", Number: 3, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt64}},
		},
		Kind: schema.KindRegularMessage,
	}
	return &schema.Schema{
		Name: "msg.proto", Syntax: "proto2", Package: "test",
		Messages: []*schema.Message{msg},
	}
}

func TestEncodeExactByteSequences(t *testing.T) {
	reg := newTestRegistry(t, scalarSchemaForTest())
	msg, _ := reg.GetMessage("test.Msg")

	tests := []struct {
		name string
		rec  *Record
		want []byte
	}{
		{"u=10", withField("u", uint64(10)), []byte{0x10, 0x0A}},
		{"s=10", withField("s", int64(10)), []byte{0x08, 0x14}},
		{"s=-10", withField("s", int64(-10)), []byte{0x08, 0x13}},
		{"i=10", withField("i", int64(10)), []byte{0x18, 0x0A}},
		{"i=-10", withField("i", int64(-10)), []byte{0x18, 0xF6, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"empty", NewRecord(), []byte{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeMessage(tc.rec, msg, reg)
			if err != nil {
				t.Fatalf("EncodeMessage: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("byte mismatch:\n%s", diff)
			}
		})
	}
}

func withField(name string, value interface{}) *Record {
	rec := NewRecord()
	rec.Fields[name] = value
	return rec
}

func TestTruncatedSubmessageLengthErrors(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	buf := NewBuffer()
	EncodeTag(buf, 1, WireLengthDelimited)
	EncodeString(buf, "Ada")
	EncodeTag(buf, 4, WireLengthDelimited) // address, declares more bytes than follow
	EncodeVarint(buf, 50)
	buf.EmitBytes([]byte{0x01, 0x02, 0x03}) // far short of the declared 50

	if _, err := DecodeMessage(buf.Bytes(), person, reg); !errors.Is(err, ErrTruncatedSubmessage) {
		t.Errorf("got %v, want ErrTruncatedSubmessage", err)
	}
}

func TestWireTypeMismatchErrors(t *testing.T) {
	reg := newTestRegistry(t, personSchemaForTest())
	person, _ := reg.GetMessage("test.Person")

	buf := NewBuffer()
	EncodeTag(buf, 1, WireLengthDelimited)
	EncodeString(buf, "Ada")
	EncodeTag(buf, 2, WireFixed64) // id is int32/varint, wrong wire type
	EncodeFixed64(buf, 1)

	if _, err := DecodeMessage(buf.Bytes(), person, reg); !errors.Is(err, ErrWireTypeMismatch) {
		t.Errorf("got %v, want ErrWireTypeMismatch", err)
	}
}
