package wire

// Record is the dynamic, schema-driven value a message decodes into and a
// message encode reads from: a plain field-name-keyed map for known
// fields, a side list of unknown fields retained verbatim for round-trip
// fidelity, and an ExtensionStore for fields declared via `extend`.
type Record struct {
	Fields     map[string]interface{}
	Unknown    []UnknownField
	Extensions *ExtensionStore
}

// UnknownField is one undecoded field captured during Deserialize: the
// exact bytes read (tag varint through end of value, inclusive of a
// group's END_GROUP tag when WireType is WireStartGroup) so Serialize can
// replay it byte-for-byte.
type UnknownField struct {
	Number   int32
	WireType WireType
	Encoded  []byte
}

// NewRecord creates an empty Record ready to be populated by a caller
// building a message to serialize, or by Deserialize.
func NewRecord() *Record {
	return &Record{
		Fields:     make(map[string]interface{}),
		Extensions: NewExtensionStore(),
	}
}

// mapEntry is the decoded shape of one map field entry before being
// folded into the owning Record's key/value collection.
type mapEntry struct {
	key   interface{}
	value interface{}
}
