package wire

import (
	"fmt"

	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
)

// Map fields are encoded as a repeated synthetic entry message, key at
// field number 1 and value at field number 2, the same convention proto
// itself uses for map<K, V>. encodeMapField/decodeMapEntry build and tear
// down that synthetic message via the registry's map-entry cache rather
// than hand-rolling the key/value tags inline.

func encodeMapField(buf *Buffer, value interface{}, field *schema.Field, owner *schema.Message, reg *registry.Registry) error {
	entries, err := toMapEntries(value)
	if err != nil {
		return err
	}
	ownerName, err := reg.QualifiedName(owner)
	if err != nil {
		return err
	}
	entryMsg := reg.GetOrCreateMapEntryMessage(ownerName, field.Name, field.Type.MapKey, field.Type.MapValue)

	for _, e := range entries {
		EncodeTag(buf, field.Number, WireLengthDelimited)
		entryRec := NewRecord()
		entryRec.Fields["key"] = e.key
		entryRec.Fields["value"] = e.value
		nested := NewBuffer()
		if err := encodeMessageInto(nested, entryRec, entryMsg, reg); err != nil {
			return err
		}
		EncodeBytes(buf, nested.Bytes())
	}
	return nil
}

func decodeMapEntry(buf *Buffer, field *schema.Field, owner *schema.Message, reg *registry.Registry) (mapEntry, error) {
	ownerName, err := reg.QualifiedName(owner)
	if err != nil {
		return mapEntry{}, err
	}
	entryMsg := reg.GetOrCreateMapEntryMessage(ownerName, field.Name, field.Type.MapKey, field.Type.MapValue)
	raw, err := DecodeBytesShared(buf)
	if err != nil {
		return mapEntry{}, err
	}
	nested := NewBufferFromBytes(raw)
	rec, err := decodeMessageFrom(nested, entryMsg, reg, -1)
	if err != nil {
		return mapEntry{}, err
	}
	return mapEntry{key: rec.Fields["key"], value: rec.Fields["value"]}, nil
}

// toMapEntries normalizes the Go value a caller assigned to a map field
// into a flat list of key/value pairs. Go has no covariant map type, so
// a dynamic record can only carry a map field as map[interface{}]interface{}
// (the shape Deserialize produces) or the more ergonomic map[string]interface{}
// for callers building a record by hand.
func toMapEntries(value interface{}) ([]mapEntry, error) {
	switch v := value.(type) {
	case map[interface{}]interface{}:
		out := make([]mapEntry, 0, len(v))
		for k, val := range v {
			out = append(out, mapEntry{key: k, value: val})
		}
		return out, nil
	case map[string]interface{}:
		out := make([]mapEntry, 0, len(v))
		for k, val := range v {
			out = append(out, mapEntry{key: k, value: val})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wire: map field value must be map[interface{}]interface{} or map[string]interface{}, got %T", value)
	}
}
