// Command demo registers a small proto2 schema by hand (no .proto file, no
// codegen) and round-trips a record through the Serialize/Deserialize pair
// to show the core codec working end to end.
package main

import (
	"fmt"
	"log"

	protobufs "github.com/sionescu/cl-protobufs"
	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
	"github.com/sionescu/cl-protobufs/wire"
)

func main() {
	reg := registry.NewRegistry()
	if err := reg.RegisterSchema(personSchema()); err != nil {
		log.Fatalf("register schema: %v", err)
	}
	codec := protobufs.New(reg)

	person := wire.NewRecord()
	person.Fields["name"] = "Ada Lovelace"
	person.Fields["id"] = int32(1815)
	person.Fields["emails"] = []string{"ada@example.com", "countess@example.com"}
	person.Fields["address"] = addressRecord("12 Mayfair St", "London")
	person.Fields["labels"] = map[string]interface{}{
		"role":   "engineer",
		"status": "active",
	}
	person.Fields["phone"] = phoneRecord("+44 20 7946 0958", 1 /* MOBILE */)

	// badge_number (field 100) is a top-level `extend Person` field of the
	// schema, not a direct Person field.
	personMsg, err := reg.GetMessage("demo.Person")
	if err != nil {
		log.Fatalf("lookup Person: %v", err)
	}
	if err := person.Extensions.Set(personMsg, 100, int32(42)); err != nil {
		log.Fatalf("set badge_number extension: %v", err)
	}

	encoded, err := codec.Serialize(person, "demo.Person")
	if err != nil {
		log.Fatalf("serialize: %v", err)
	}
	fmt.Printf("encoded %d bytes\n", len(encoded))

	decoded, err := codec.Deserialize(encoded, "demo.Person")
	if err != nil {
		log.Fatalf("deserialize: %v", err)
	}

	fmt.Printf("name=%v id=%v emails=%v\n", decoded.Fields["name"], decoded.Fields["id"], decoded.Fields["emails"])
	addr := decoded.Fields["address"].(*wire.Record)
	fmt.Printf("address: street=%v city=%v\n", addr.Fields["street"], addr.Fields["city"])
	if badge, ok := decoded.Extensions.Get(personMsg, 100); ok {
		fmt.Printf("badge_number=%v\n", badge)
	}
}

func addressRecord(street, city string) *wire.Record {
	rec := wire.NewRecord()
	rec.Fields["street"] = street
	rec.Fields["city"] = city
	return rec
}

func phoneRecord(number string, phoneType int32) *wire.Record {
	rec := wire.NewRecord()
	rec.Fields["number"] = number
	rec.Fields["type"] = phoneType
	return rec
}

// personSchema describes demo.Person the way a .proto file would, but
// built directly from the schema package's descriptor types.
func personSchema() *schema.Schema {
	addressMsg := &schema.Message{
		Name: "Address",
		Fields: []*schema.Field{
			{Name: "street", Number: 1, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "city", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
		},
		Kind: schema.KindRegularMessage,
	}

	phoneTypeEnum := &schema.Enum{
		Name: "PhoneType",
		Values: []*schema.EnumValue{
			{Name: "HOME", Number: 0},
			{Name: "MOBILE", Number: 1},
			{Name: "WORK", Number: 2},
		},
	}

	phoneMsg := &schema.Message{
		Name: "PhoneNumber",
		Fields: []*schema.Field{
			{Name: "number", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "type", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindEnum, EnumType: "demo.PhoneType"}},
		},
		Kind: schema.KindRegularMessage,
	}

	personMsg := &schema.Message{
		Name: "Person",
		Fields: []*schema.Field{
			{Name: "name", Number: 1, Label: schema.LabelRequired, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "id", Number: 2, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32}},
			{Name: "emails", Number: 3, Label: schema.LabelRepeated, Type: schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString}},
			{Name: "address", Number: 4, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindMessage, MessageType: "demo.Address"}},
			{
				Name: "labels", Number: 5, Label: schema.LabelRepeated,
				Type: schema.FieldType{
					Kind:     schema.KindMap,
					MapKey:   &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString},
					MapValue: &schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeString},
				},
			},
			{Name: "phone", Number: 6, Label: schema.LabelOptional, Type: schema.FieldType{Kind: schema.KindGroup, MessageType: "demo.PhoneNumber"}},
		},
		ExtensionRanges: []schema.ExtensionRange{{From: 100, To: 199}},
		Kind:            schema.KindRegularMessage,
	}
	phoneMsg.Kind = schema.KindGroupMessage
	phoneMsg.GroupFieldNumber = 6

	badgeNumber := &schema.Field{
		Name: "badge_number", Number: 100, Label: schema.LabelOptional,
		Type:           schema.FieldType{Kind: schema.KindPrimitive, PrimitiveType: schema.TypeInt32},
		ExtendsMessage: "demo.Person",
	}

	return &schema.Schema{
		Name:       "person.proto",
		Syntax:     "proto2",
		Package:    "demo",
		Messages:   []*schema.Message{personMsg, addressMsg, phoneMsg},
		Enums:      []*schema.Enum{phoneTypeEnum},
		Extensions: []*schema.Field{badgeNumber},
	}
}
