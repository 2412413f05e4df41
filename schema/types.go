// Package schema defines the static descriptor model a proto2 wire codec
// dispatches against: schemas, messages, fields, enums and the handful of
// type-level concepts (extension ranges, type aliases, services) that the
// codec needs to know about but does not itself interpret beyond routing.
package schema

// ProtoRepo is a named collection of schemas, mirroring one source tree's
// worth of .proto files. The core never builds one of these itself — it is
// handed a populated ProtoRepo (or individual Schemas) by the external
// .proto parser.
type ProtoRepo struct {
	Schemas map[string]*Schema
}

// Schema corresponds to one source file: a package name, its imports, and
// the top-level Messages/Enums/Services it declares. Each Import records
// only the imported file's path; imports are not resolved to other Schema
// values. Syntax must be "proto2" for this core.
type Schema struct {
	Name     string // canonical file name, e.g. "user.proto"
	Syntax   string // must be "proto2"
	Package  string
	Imports  []*Import
	Messages []*Message
	Enums    []*Enum
	Services []*Service
	Extensions []*Field // top-level `extend` fields; each names its own host via Field.ExtendsMessage
}

// Import represents a single import statement within a Schema.
type Import struct {
	Path   string
	Public bool
	Weak   bool
}

// MessageKind distinguishes ordinary messages from the deprecated group
// construct and from synthetic extension-block containers.
type MessageKind string

const (
	KindRegularMessage MessageKind = "regular"
	KindGroupMessage   MessageKind = "group"
	KindExtensionBlock MessageKind = "extension_block"
)

// ParentKind says whether a Message's Parent is another Message (nesting)
// or a Schema (top-level declaration).
type ParentKind string

const (
	ParentIsSchema  ParentKind = "schema"
	ParentIsMessage ParentKind = "message"
)

// ParentRef is a discriminated, name-based reference used instead of a
// direct Go pointer so that Message <-> Field <-> Message-type-reference
// cycles never need to be constructed out of order. The registry resolves
// a ParentRef by qualified name on demand.
type ParentRef struct {
	Kind          ParentKind
	QualifiedName string // qualified name of the parent Schema or Message
}

// Message represents one proto2 message definition: an ordered set of
// fields plus extension ranges, a kind, and a parent used to build the
// dotted qualified name a registry indexes it under.
type Message struct {
	Name             string
	Fields           []*Field
	NestedTypes      []*Message
	NestedEnums      []*Enum
	Extensions       []*Field // `extend` fields lexically declared inside this message; each names its own host via Field.ExtendsMessage
	ExtensionRanges  []ExtensionRange
	OneofGroups      []*Oneof
	Kind             MessageKind
	Parent           *ParentRef
	MapEntry         bool  // synthetic key/value entry message backing a map field
	GroupFieldNumber int32 // set when Kind == KindGroupMessage: the field number shared by START_GROUP/END_GROUP
}

// ExtensionRange is an inclusive [From, To] span of field numbers reserved
// within a Message for fields declared outside it.
type ExtensionRange struct {
	From int32
	To   int32
}

// Contains reports whether number falls within this extension range.
func (r ExtensionRange) Contains(number int32) bool {
	return number >= r.From && number <= r.To
}

// Field represents a single message field.
type Field struct {
	Name         string
	Number       int32
	Label        FieldLabel
	Type         FieldType
	DefaultValue string // sentinel "" means no default provided
	JsonName     string
	OneofIndex   int32 // -1 if not part of a oneof
	Packed       bool  // meaningful only for repeated scalar fields
	Lazy         bool
	ExtendsMessage string // qualified name of the message extended; set only for extension fields
}

// Oneof groups a set of fields of which at most one is expected to be set.
// The codec treats oneof fields exactly like ordinary fields on the wire;
// oneof membership is bookkeeping the descriptor model carries but the
// wire codec does not enforce.
type Oneof struct {
	Name   string
	Fields []*Field
}

// FieldLabel is a field's cardinality.
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRequired FieldLabel = "required"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType describes what a field holds.
type FieldType struct {
	Kind          TypeKind
	PrimitiveType PrimitiveType // for Kind == KindPrimitive
	MessageType   string        // qualified name, for Kind == KindMessage or KindGroup
	EnumType      string        // qualified name, for Kind == KindEnum
	AliasType     string        // registered TypeAlias name, for Kind == KindAlias
	MapKey        *FieldType    // for Kind == KindMap
	MapValue      *FieldType    // for Kind == KindMap
}

// TypeKind is the broad category of a field's type.
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
	KindGroup     TypeKind = "group"
	KindEnum      TypeKind = "enum"
	KindMap       TypeKind = "map"
	KindAlias     TypeKind = "alias"
)

// PrimitiveType enumerates the proto2 primitive keywords.
type PrimitiveType string

const (
	TypeDouble   PrimitiveType = "double"
	TypeFloat    PrimitiveType = "float"
	TypeInt64    PrimitiveType = "int64"
	TypeUint64   PrimitiveType = "uint64"
	TypeInt32    PrimitiveType = "int32"
	TypeFixed64  PrimitiveType = "fixed64"
	TypeFixed32  PrimitiveType = "fixed32"
	TypeBool     PrimitiveType = "bool"
	TypeString   PrimitiveType = "string"
	TypeBytes    PrimitiveType = "bytes"
	TypeUint32   PrimitiveType = "uint32"
	TypeSfixed32 PrimitiveType = "sfixed32"
	TypeSfixed64 PrimitiveType = "sfixed64"
	TypeSint32   PrimitiveType = "sint32"
	TypeSint64   PrimitiveType = "sint64"
)

var packedEligible = map[PrimitiveType]struct{}{
	TypeDouble:   {},
	TypeFloat:    {},
	TypeInt64:    {},
	TypeUint64:   {},
	TypeInt32:    {},
	TypeFixed64:  {},
	TypeFixed32:  {},
	TypeBool:     {},
	TypeUint32:   {},
	TypeSfixed32: {},
	TypeSfixed64: {},
	TypeSint32:   {},
	TypeSint64:   {},
}

// IsPackedEligible reports whether a repeated field of this primitive type
// may use the packed encoding. Enums are packable too; that is handled
// separately since it is not a PrimitiveType.
func IsPackedEligible(t PrimitiveType) bool {
	_, ok := packedEligible[t]
	return ok
}

// TypeAlias is a first-class field type backed by user-supplied
// serialize/deserialize closures — the "Symbol serialization" plugin hook.
// It behaves like a primitive for codec dispatch purposes once registered.
type TypeAlias struct {
	Name      string
	ProtoType string // the wire-level primitive it rides on, e.g. "string"
	LispType  string // descriptive only; carried through from the original generator's naming
	Encode    func(value interface{}) ([]byte, error)
	Decode    func(data []byte) (interface{}, error)
}

// Enum is a named, ordered list of EnumValues.
type Enum struct {
	Name       string
	Values     []*EnumValue
	AllowAlias bool
	AliasFor   string // qualified name of another Enum whose values are shared, "" if none
}

// EnumValue is one (symbolic value, wire index) pair.
type EnumValue struct {
	Name   string
	Number int32
}

// Service groups a set of RPC methods. The wire codec treats Method
// input/output purely as ordinary Messages; Service/Method only matter to
// the RPC layer this core does not implement.
type Service struct {
	Name    string
	Methods []*Method
}

// Method describes one RPC endpoint.
type Method struct {
	Name            string
	InputType       string
	OutputType      string
	ClientStreaming bool
	ServerStreaming bool
}
