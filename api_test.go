package protobufs

import (
	"testing"

	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
	"github.com/sionescu/cl-protobufs/wire"
)

func testSchema() *schema.Schema {
	msg := &schema.Message{
		Name: "Greeting",
		Fields: []*schema.Field{
			{Name: "text", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "count", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32}},
		},
		Kind: schema.KindRegularMessage,
	}
	return &schema.Schema{
		Name: "greeting.proto", Syntax: "proto2", Package: "demo",
		Messages: []*schema.Message{msg},
	}
}

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	reg := registry.NewRegistry()
	if err := reg.RegisterSchema(testSchema()); err != nil {
		t.Fatalf("RegisterSchema: %v", err)
	}
	return New(reg)
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	rec := wire.NewRecord()
	rec.Fields["text"] = "hello"
	rec.Fields["count"] = int32(3)

	data, err := codec.Serialize(rec, "demo.Greeting")
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	decoded, err := codec.Deserialize(data, "demo.Greeting")
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if decoded.Fields["text"] != "hello" || decoded.Fields["count"] != int32(3) {
		t.Errorf("got %#v", decoded.Fields)
	}
}

func TestSerializeUnknownMessageType(t *testing.T) {
	codec := newTestCodec(t)
	if _, err := codec.Serialize(wire.NewRecord(), "demo.DoesNotExist"); err == nil {
		t.Fatal("expected error for unregistered message type")
	}
}

func TestSerializeIntoAppends(t *testing.T) {
	codec := newTestCodec(t)
	rec := wire.NewRecord()
	rec.Fields["text"] = "hi"

	prefix := []byte{0xDE, 0xAD}
	out, err := codec.SerializeInto(prefix, rec, "demo.Greeting")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) <= 2 || out[0] != 0xDE || out[1] != 0xAD {
		t.Errorf("expected prefix preserved, got %x", out)
	}

	decoded, err := codec.Deserialize(out[2:], "demo.Greeting")
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Fields["text"] != "hi" {
		t.Errorf("got %#v", decoded.Fields)
	}
}

func TestDeserializeIntoMergesFields(t *testing.T) {
	codec := newTestCodec(t)
	rec := wire.NewRecord()
	rec.Fields["text"] = "merged"
	rec.Fields["count"] = int32(9)
	data, err := codec.Serialize(rec, "demo.Greeting")
	if err != nil {
		t.Fatal(err)
	}

	dst := wire.NewRecord()
	dst.Fields["extra"] = "kept"
	if err := codec.DeserializeInto(dst, data, "demo.Greeting"); err != nil {
		t.Fatal(err)
	}
	if dst.Fields["text"] != "merged" || dst.Fields["count"] != int32(9) || dst.Fields["extra"] != "kept" {
		t.Errorf("got %#v", dst.Fields)
	}
}

func TestRegistryAccessor(t *testing.T) {
	codec := newTestCodec(t)
	if codec.Registry() == nil {
		t.Fatal("expected non-nil registry")
	}
	if _, err := codec.Registry().GetMessage("demo.Greeting"); err != nil {
		t.Fatalf("expected registered message reachable via Registry(): %v", err)
	}
}
