package wire

import (
	"fmt"
	"sort"

	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
)

// EncodeMessage serializes rec according to msg's descriptor, emitting
// known fields in ascending field-number order, then registered
// extensions in ascending field-number order, then retained unknown
// fields in their original relative order.
func EncodeMessage(rec *Record, msg *schema.Message, reg *registry.Registry) ([]byte, error) {
	buf := NewBuffer()
	if err := encodeMessageInto(buf, rec, msg, reg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMessageInto(buf *Buffer, rec *Record, msg *schema.Message, reg *registry.Registry) error {
	fields := orderedFields(msg)

	for _, field := range fields {
		value, present := rec.Fields[field.Name]
		if !present {
			if field.Label == schema.LabelRequired {
				return wrapWithField(ErrMissingRequired, field.Name)
			}
			continue
		}
		if err := encodeNamedField(buf, value, field, msg, reg); err != nil {
			return wrapWithField(err, field.Name)
		}
	}

	if rec.Extensions != nil && registry.IsExtendable(msg) {
		if err := encodeExtensions(buf, rec, msg, reg); err != nil {
			return err
		}
	}

	for _, uf := range rec.Unknown {
		buf.EmitBytes(uf.Encoded)
	}
	return nil
}

func encodeExtensions(buf *Buffer, rec *Record, msg *schema.Message, reg *registry.Registry) error {
	hostName, err := reg.QualifiedName(msg)
	if err != nil {
		return err
	}
	all := rec.Extensions.All(msg)
	numbers := make([]int32, 0, len(all))
	for n := range all {
		numbers = append(numbers, n)
	}
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })

	for _, number := range numbers {
		field, ok := reg.ExtensionField(hostName, number)
		if !ok {
			return fmt.Errorf("%w: field %d on %s", ErrExtensionNotFound, number, hostName)
		}
		if err := encodeNamedField(buf, all[number], field, msg, reg); err != nil {
			return wrapWithField(err, field.Name)
		}
	}
	return nil
}

// encodeNamedField encodes one field's tag(s) and value(s), handling
// repeated/packed/group/map fan-out. owner is the message descriptor
// that declares field (needed to name a map field's synthetic entry
// message).
func encodeNamedField(buf *Buffer, value interface{}, field *schema.Field, owner *schema.Message, reg *registry.Registry) error {
	if field.Type.Kind == schema.KindMap {
		return encodeMapField(buf, value, field, owner, reg)
	}

	if field.Label == schema.LabelRepeated {
		return encodeRepeatedField(buf, value, field, reg)
	}

	if field.Type.Kind == schema.KindGroup {
		return encodeGroupValue(buf, value, field, reg)
	}

	wt, err := wireTypeForField(&field.Type)
	if err != nil {
		return err
	}
	EncodeTag(buf, field.Number, wt)
	return encodeScalarOrMessage(buf, value, &field.Type, reg)
}

func encodeRepeatedField(buf *Buffer, value interface{}, field *schema.Field, reg *registry.Registry) error {
	elements, err := toInterfaceSlice(value)
	if err != nil {
		return err
	}

	if field.Packed && isPackable(&field.Type) {
		return encodePackedField(buf, elements, field, reg)
	}

	for _, element := range elements {
		if field.Type.Kind == schema.KindGroup {
			if err := encodeGroupValue(buf, element, field, reg); err != nil {
				return err
			}
			continue
		}
		wt, err := wireTypeForField(&field.Type)
		if err != nil {
			return err
		}
		EncodeTag(buf, field.Number, wt)
		if err := encodeScalarOrMessage(buf, element, &field.Type, reg); err != nil {
			return err
		}
	}
	return nil
}

// encodePackedField implements the two-pass packed-repeated strategy: the
// size of every element is computed up front via PackedSize, the buffer is
// grown to fit in one shot, and the actual bytes written are asserted to
// match the precomputed size rather than backpatched after the fact.
func encodePackedField(buf *Buffer, elements []interface{}, field *schema.Field, reg *registry.Registry) error {
	sizes := make([]int, len(elements))
	payloadSize := 0
	for i, element := range elements {
		size, err := packedElementSize(element, &field.Type, reg)
		if err != nil {
			return err
		}
		sizes[i] = size
		payloadSize += size
	}
	totalSize := PackedSize(len(elements), func(i int) int { return sizes[i] })

	EncodeTag(buf, field.Number, WireLengthDelimited)
	buf.EnsureSpace(totalSize)
	lengthPrefixStart := buf.Len()
	EncodeVarint(buf, uint64(payloadSize))
	for _, element := range elements {
		if err := encodeScalarOrMessage(buf, element, &field.Type, reg); err != nil {
			return err
		}
	}
	if written := buf.Len() - lengthPrefixStart; written != totalSize {
		return fmt.Errorf("wire: packed field %q wrote %d bytes, precomputed size was %d", field.Name, written, totalSize)
	}
	return nil
}

// packedElementSize sizes a single element of a packed repeated field
// without encoding it, mirroring encodeScalarOrMessage's enum/primitive
// dispatch but returning a byte count instead of writing one.
func packedElementSize(value interface{}, ft *schema.FieldType, reg *registry.Registry) (int, error) {
	switch ft.Kind {
	case schema.KindEnum:
		n, err := resolveEnumNumber(value, ft.EnumType, reg)
		if err != nil {
			return 0, err
		}
		return VarintSize(uint64(uint32(n))), nil
	case schema.KindPrimitive:
		return primitiveSize(value, ft.PrimitiveType)
	default:
		return 0, fmt.Errorf("wire: field type kind %q is not packable", ft.Kind)
	}
}

func primitiveSize(value interface{}, pt schema.PrimitiveType) (int, error) {
	switch pt {
	case schema.TypeInt32:
		return VarintSize(uint64(int64(value.(int32)))), nil
	case schema.TypeInt64:
		return VarintSize(uint64(value.(int64))), nil
	case schema.TypeUint32:
		return VarintSize(uint64(value.(uint32))), nil
	case schema.TypeUint64:
		return VarintSize(value.(uint64)), nil
	case schema.TypeSint32:
		return VarintSize(EncodeZigZag32(value.(int32))), nil
	case schema.TypeSint64:
		return VarintSize(EncodeZigZag64(value.(int64))), nil
	case schema.TypeBool:
		return 1, nil
	case schema.TypeFixed32, schema.TypeSfixed32, schema.TypeFloat:
		return Length32(), nil
	case schema.TypeFixed64, schema.TypeSfixed64, schema.TypeDouble:
		return Length64(), nil
	default:
		return 0, fmt.Errorf("wire: primitive type %q is not packable", pt)
	}
}

// checkGroupFieldNumber validates that the group message's own record of
// which field carries it agrees with the field actually referencing it —
// a KindGroupMessage's GroupFieldNumber is authoritative for the START_GROUP/
// END_GROUP tag number, and a mismatch means the descriptor was built
// inconsistently (e.g. the group type was reused under a different field
// number than it declares).
func checkGroupFieldNumber(groupMsg *schema.Message, field *schema.Field) error {
	if groupMsg.GroupFieldNumber != field.Number {
		return fmt.Errorf("wire: group field %q has number %d but %s declares GroupFieldNumber %d", field.Name, field.Number, groupMsg.Name, groupMsg.GroupFieldNumber)
	}
	return nil
}

func encodeGroupValue(buf *Buffer, value interface{}, field *schema.Field, reg *registry.Registry) error {
	rec, ok := value.(*Record)
	if !ok {
		return fmt.Errorf("wire: group field %q requires a *Record value, got %T", field.Name, value)
	}
	groupMsg, err := reg.GetMessage(field.Type.MessageType)
	if err != nil {
		return err
	}
	if err := checkGroupFieldNumber(groupMsg, field); err != nil {
		return err
	}
	EncodeTag(buf, field.Number, WireStartGroup)
	if err := encodeMessageInto(buf, rec, groupMsg, reg); err != nil {
		return err
	}
	EncodeTag(buf, field.Number, WireEndGroup)
	return nil
}

// encodeScalarOrMessage encodes a single value (one element of a repeated
// field, or a non-repeated field's value) with no tag — the caller has
// already emitted the tag, except for length-delimited kinds which need
// their own length prefix.
func encodeScalarOrMessage(buf *Buffer, value interface{}, ft *schema.FieldType, reg *registry.Registry) error {
	switch ft.Kind {
	case schema.KindPrimitive:
		return encodePrimitive(buf, value, ft.PrimitiveType)
	case schema.KindEnum:
		return encodeEnumValue(buf, value, ft.EnumType, reg)
	case schema.KindMessage:
		return encodeSubmessage(buf, value, ft.MessageType, reg)
	case schema.KindAlias:
		return encodeAlias(buf, value, ft.AliasType, reg)
	default:
		return fmt.Errorf("wire: unsupported field type kind %q", ft.Kind)
	}
}

func encodeSubmessage(buf *Buffer, value interface{}, messageType string, reg *registry.Registry) error {
	rec, ok := value.(*Record)
	if !ok {
		return fmt.Errorf("wire: message field requires a *Record value, got %T", value)
	}
	msg, err := reg.GetMessage(messageType)
	if err != nil {
		return err
	}
	nested := NewBuffer()
	if err := encodeMessageInto(nested, rec, msg, reg); err != nil {
		return err
	}
	EncodeBytes(buf, nested.Bytes())
	return nil
}

func encodeAlias(buf *Buffer, value interface{}, aliasName string, reg *registry.Registry) error {
	alias, err := reg.GetTypeAlias(aliasName)
	if err != nil {
		return err
	}
	encoded, err := alias.Encode(value)
	if err != nil {
		return err
	}
	EncodeBytes(buf, encoded)
	return nil
}

func encodeEnumValue(buf *Buffer, value interface{}, enumType string, reg *registry.Registry) error {
	n, err := resolveEnumNumber(value, enumType, reg)
	if err != nil {
		return err
	}
	EncodeEnum(buf, n)
	return nil
}

// resolveEnumNumber maps an enum field's value — either its wire number
// directly or a symbolic name looked up against the registry — to the
// int32 that actually goes on the wire.
func resolveEnumNumber(value interface{}, enumType string, reg *registry.Registry) (int32, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case string:
		enum, err := reg.GetEnum(enumType)
		if err != nil {
			return 0, err
		}
		for _, ev := range enum.Values {
			if ev.Name == v {
				return ev.Number, nil
			}
		}
		return 0, fmt.Errorf("%w: %q in enum %s", ErrUnknownEnumValue, v, enumType)
	default:
		return 0, fmt.Errorf("wire: enum value must be int32 or string, got %T", value)
	}
}

func encodePrimitive(buf *Buffer, value interface{}, pt schema.PrimitiveType) error {
	switch pt {
	case schema.TypeString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("wire: string field requires a string value, got %T", value)
		}
		EncodeString(buf, s)
	case schema.TypeBytes:
		b, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("wire: bytes field requires a []byte value, got %T", value)
		}
		EncodeBytes(buf, b)
	case schema.TypeInt32:
		EncodeInt32(buf, value.(int32))
	case schema.TypeInt64:
		EncodeInt64(buf, value.(int64))
	case schema.TypeUint32:
		EncodeUint32(buf, value.(uint32))
	case schema.TypeUint64:
		EncodeUint64(buf, value.(uint64))
	case schema.TypeSint32:
		EncodeSint32(buf, value.(int32))
	case schema.TypeSint64:
		EncodeSint64(buf, value.(int64))
	case schema.TypeBool:
		EncodeBool(buf, value.(bool))
	case schema.TypeFixed32:
		EncodeFixed32(buf, value.(uint32))
	case schema.TypeFixed64:
		EncodeFixed64(buf, value.(uint64))
	case schema.TypeSfixed32:
		EncodeSfixed32(buf, value.(int32))
	case schema.TypeSfixed64:
		EncodeSfixed64(buf, value.(int64))
	case schema.TypeFloat:
		EncodeFloat32(buf, value.(float32))
	case schema.TypeDouble:
		EncodeFloat64(buf, value.(float64))
	default:
		return fmt.Errorf("wire: unsupported primitive type %q", pt)
	}
	return nil
}

// --- decode ---

// DecodeMessage deserializes data according to msg's descriptor.
func DecodeMessage(data []byte, msg *schema.Message, reg *registry.Registry) (*Record, error) {
	buf := NewBufferFromBytes(data)
	rec, err := decodeMessageFrom(buf, msg, reg, -1)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// decodeMessageFrom reads fields until buf is exhausted (terminatingGroup
// == -1) or an END_GROUP tag matching terminatingGroup is seen.
func decodeMessageFrom(buf *Buffer, msg *schema.Message, reg *registry.Registry, terminatingGroup int32) (*Record, error) {
	rec := NewRecord()
	repeated := make(map[string][]interface{})
	mapEntries := make(map[string][]mapEntry)

	for !buf.Done() {
		start := buf.Pos()
		number, wt, err := DecodeTag(buf)
		if err != nil {
			return nil, err
		}

		if wt == WireEndGroup {
			if terminatingGroup == number {
				return finishMessage(rec, msg, repeated, mapEntries)
			}
			return nil, ErrGroupMismatch
		}

		field, ok := reg.FieldByNumber(msg, number)
		if !ok {
			field, ok = lookupExtensionField(reg, msg, number)
			if ok {
				if err := decodeExtensionInto(buf, rec, msg, field, wt, reg); err != nil {
					return nil, wrapWithField(err, field.Name)
				}
				continue
			}
			if _, err := SkipUnknown(buf, number, wt); err != nil {
				return nil, err
			}
			rec.Unknown = append(rec.Unknown, UnknownField{
				Number:   number,
				WireType: wt,
				Encoded:  append([]byte{}, buf.buf[start:buf.Pos()]...),
			})
			continue
		}

		if field.Type.Kind == schema.KindMap {
			entry, err := decodeMapEntry(buf, field, msg, reg)
			if err != nil {
				return nil, wrapWithField(err, field.Name)
			}
			mapEntries[field.Name] = append(mapEntries[field.Name], entry)
			continue
		}

		if field.Type.Kind == schema.KindGroup {
			if err := requireWireType(wt, WireStartGroup); err != nil {
				return nil, wrapWithField(err, field.Name)
			}
			groupMsg, err := reg.GetMessage(field.Type.MessageType)
			if err != nil {
				return nil, err
			}
			if err := checkGroupFieldNumber(groupMsg, field); err != nil {
				return nil, wrapWithField(err, field.Name)
			}
			nested, err := decodeMessageFrom(buf, groupMsg, reg, field.Number)
			if err != nil {
				return nil, wrapWithField(err, field.Name)
			}
			if field.Label == schema.LabelRepeated {
				repeated[field.Name] = append(repeated[field.Name], nested)
			} else {
				rec.Fields[field.Name] = nested
			}
			continue
		}

		if field.Label == schema.LabelRepeated && isPackable(&field.Type) && wt == WireLengthDelimited {
			values, err := decodePackedField(buf, field, reg)
			if err != nil {
				return nil, wrapWithField(err, field.Name)
			}
			repeated[field.Name] = append(repeated[field.Name], values...)
			continue
		}

		value, err := decodeScalarOrMessage(buf, &field.Type, wt, reg)
		if err != nil {
			return nil, wrapWithField(err, field.Name)
		}
		if field.Label == schema.LabelRepeated {
			repeated[field.Name] = append(repeated[field.Name], value)
		} else {
			rec.Fields[field.Name] = value
		}
	}

	if terminatingGroup != -1 {
		return nil, ErrTruncatedSubmessage
	}
	return finishMessage(rec, msg, repeated, mapEntries)
}

func finishMessage(rec *Record, msg *schema.Message, repeated map[string][]interface{}, mapEntries map[string][]mapEntry) (*Record, error) {
	for name, values := range repeated {
		rec.Fields[name] = values
	}
	for name, entries := range mapEntries {
		m := make(map[interface{}]interface{}, len(entries))
		for _, e := range entries {
			m[e.key] = e.value
		}
		rec.Fields[name] = m
	}
	if err := validateRequired(rec, msg); err != nil {
		return nil, err
	}
	return rec, nil
}

func validateRequired(rec *Record, msg *schema.Message) error {
	for _, f := range msg.Fields {
		if f.Label == schema.LabelRequired {
			if _, ok := rec.Fields[f.Name]; !ok {
				return wrapWithField(ErrMissingRequired, f.Name)
			}
		}
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			if f.Label == schema.LabelRequired {
				if _, ok := rec.Fields[f.Name]; !ok {
					return wrapWithField(ErrMissingRequired, f.Name)
				}
			}
		}
	}
	return nil
}

func decodeExtensionInto(buf *Buffer, rec *Record, host *schema.Message, field *schema.Field, wt WireType, reg *registry.Registry) error {
	value, err := decodeScalarOrMessage(buf, &field.Type, wt, reg)
	if err != nil {
		return err
	}
	return rec.Extensions.Set(host, field.Number, value)
}

func lookupExtensionField(reg *registry.Registry, msg *schema.Message, number int32) (*schema.Field, bool) {
	if !registry.IsExtendable(msg) {
		return nil, false
	}
	hostName, err := reg.QualifiedName(msg)
	if err != nil {
		return nil, false
	}
	return reg.ExtensionField(hostName, number)
}

func decodePackedField(buf *Buffer, field *schema.Field, reg *registry.Registry) ([]interface{}, error) {
	length, err := DecodeVarint(buf)
	if err != nil {
		return nil, err
	}
	raw, ok := buf.ReadN(int(length))
	if !ok {
		return nil, ErrTruncatedSubmessage
	}
	sub := NewBufferFromBytes(raw)
	wt, err := wireTypeForField(&field.Type)
	if err != nil {
		return nil, err
	}
	var values []interface{}
	for !sub.Done() {
		v, err := decodeScalarOrMessage(sub, &field.Type, wt, reg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func decodeScalarOrMessage(buf *Buffer, ft *schema.FieldType, wt WireType, reg *registry.Registry) (interface{}, error) {
	switch ft.Kind {
	case schema.KindPrimitive:
		return decodePrimitive(buf, ft.PrimitiveType, wt)
	case schema.KindEnum:
		if err := requireWireType(wt, WireVarint); err != nil {
			return nil, err
		}
		return decodeEnumValue(buf, ft.EnumType, reg)
	case schema.KindMessage:
		if err := requireWireType(wt, WireLengthDelimited); err != nil {
			return nil, err
		}
		return decodeSubmessage(buf, ft.MessageType, reg)
	case schema.KindAlias:
		return decodeAlias(buf, ft.AliasType, reg)
	default:
		return nil, fmt.Errorf("wire: unsupported field type kind %q", ft.Kind)
	}
}

func decodeSubmessage(buf *Buffer, messageType string, reg *registry.Registry) (*Record, error) {
	raw, err := DecodeBytesShared(buf)
	if err != nil {
		return nil, err
	}
	msg, err := reg.GetMessage(messageType)
	if err != nil {
		return nil, err
	}
	nested := NewBufferFromBytes(raw)
	return decodeMessageFrom(nested, msg, reg, -1)
}

func decodeAlias(buf *Buffer, aliasName string, reg *registry.Registry) (interface{}, error) {
	alias, err := reg.GetTypeAlias(aliasName)
	if err != nil {
		return nil, err
	}
	raw, err := DecodeBytesShared(buf)
	if err != nil {
		return nil, err
	}
	return alias.Decode(raw)
}

// decodeEnumValue never fails on an unrecognized wire index: it surfaces
// the raw int32 instead, matching this implementation's decode-never-
// errors choice for enums (encode of an unrecognized symbol does error,
// via encodeEnumValue's ErrUnknownEnumValue path).
func decodeEnumValue(buf *Buffer, enumType string, reg *registry.Registry) (interface{}, error) {
	raw, err := DecodeEnum(buf)
	if err != nil {
		return nil, err
	}
	enum, err := reg.GetEnum(enumType)
	if err != nil {
		return raw, nil
	}
	for _, ev := range enum.Values {
		if ev.Number == raw {
			return ev.Name, nil
		}
	}
	return raw, nil
}

func decodePrimitive(buf *Buffer, pt schema.PrimitiveType, wt WireType) (interface{}, error) {
	check := func(want WireType) error { return requireWireType(wt, want) }
	switch pt {
	case schema.TypeString:
		if err := check(WireLengthDelimited); err != nil {
			return nil, err
		}
		return DecodeString(buf)
	case schema.TypeBytes:
		if err := check(WireLengthDelimited); err != nil {
			return nil, err
		}
		return DecodeBytes(buf)
	case schema.TypeInt32:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeInt32(buf)
	case schema.TypeInt64:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeInt64(buf)
	case schema.TypeUint32:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeUint32(buf)
	case schema.TypeUint64:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeUint64(buf)
	case schema.TypeSint32:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeSint32(buf)
	case schema.TypeSint64:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeSint64(buf)
	case schema.TypeBool:
		if err := check(WireVarint); err != nil {
			return nil, err
		}
		return DecodeBool(buf)
	case schema.TypeFixed32:
		if err := check(WireFixed32); err != nil {
			return nil, err
		}
		return DecodeFixed32(buf)
	case schema.TypeFixed64:
		if err := check(WireFixed64); err != nil {
			return nil, err
		}
		return DecodeFixed64(buf)
	case schema.TypeSfixed32:
		if err := check(WireFixed32); err != nil {
			return nil, err
		}
		return DecodeSfixed32(buf)
	case schema.TypeSfixed64:
		if err := check(WireFixed64); err != nil {
			return nil, err
		}
		return DecodeSfixed64(buf)
	case schema.TypeFloat:
		if err := check(WireFixed32); err != nil {
			return nil, err
		}
		return DecodeFloat32(buf)
	case schema.TypeDouble:
		if err := check(WireFixed64); err != nil {
			return nil, err
		}
		return DecodeFloat64(buf)
	default:
		return nil, fmt.Errorf("wire: unsupported primitive type %q", pt)
	}
}

// --- shared helpers ---

// orderedFields returns msg's direct and oneof fields, sorted ascending by
// field number, so encoding order is deterministic regardless of how the
// schema's Fields/OneofGroups slices were populated.
func orderedFields(msg *schema.Message) []*schema.Field {
	var fields []*schema.Field
	fields = append(fields, msg.Fields...)
	for _, oneof := range msg.OneofGroups {
		fields = append(fields, oneof.Fields...)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Number < fields[j].Number })
	return fields
}

func wireTypeForField(ft *schema.FieldType) (WireType, error) {
	switch ft.Kind {
	case schema.KindPrimitive:
		switch ft.PrimitiveType {
		case schema.TypeString, schema.TypeBytes:
			return WireLengthDelimited, nil
		case schema.TypeFloat, schema.TypeFixed32, schema.TypeSfixed32:
			return WireFixed32, nil
		case schema.TypeDouble, schema.TypeFixed64, schema.TypeSfixed64:
			return WireFixed64, nil
		default:
			return WireVarint, nil
		}
	case schema.KindEnum:
		return WireVarint, nil
	case schema.KindMessage, schema.KindMap, schema.KindAlias:
		return WireLengthDelimited, nil
	case schema.KindGroup:
		return WireStartGroup, nil
	default:
		return 0, fmt.Errorf("wire: unsupported field type kind %q", ft.Kind)
	}
}

func isPackable(ft *schema.FieldType) bool {
	if ft.Kind == schema.KindEnum {
		return true
	}
	if ft.Kind != schema.KindPrimitive {
		return false
	}
	return schema.IsPackedEligible(ft.PrimitiveType)
}

func toInterfaceSlice(value interface{}) ([]interface{}, error) {
	if s, ok := value.([]interface{}); ok {
		return s, nil
	}
	switch v := value.(type) {
	case []string:
		return stringsToInterfaces(v), nil
	case []int32:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []int64:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []uint32:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []uint64:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []bool:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []float32:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []float64:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	case []*Record:
		out := make([]interface{}, len(v))
		for i, x := range v {
			out[i] = x
		}
		return out, nil
	default:
		return nil, fmt.Errorf("wire: repeated field value must be a slice, got %T", value)
	}
}

func stringsToInterfaces(v []string) []interface{} {
	out := make([]interface{}, len(v))
	for i, x := range v {
		out[i] = x
	}
	return out
}


