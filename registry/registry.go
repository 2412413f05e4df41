// Package registry holds the process-wide, init-once descriptor tables a
// wire codec dispatches against: schemas, messages, enums, type aliases
// and extension fields, indexed by canonical symbol/qualified name. Once
// a Registry has been populated via the Register* calls, it is treated as
// immutable; concurrent readers are safe, concurrent writers are not
// supported and rebinding an already-registered name is an error.
package registry

import (
	"fmt"
	"sync"

	"github.com/sionescu/cl-protobufs/schema"
)

const (
	minFieldNumber      = 1
	maxFieldNumber       = 1<<29 - 1 // 2^29 - 1, matches the descriptor.proto limit
	reservedRangeStart   = 19000
	reservedRangeEnd     = 19999
)

// Registry is the symbol table a codec consults to locate a Message,
// Enum, Service or TypeAlias by name, and to look up a Field by its wire
// field number within a Message.
type Registry struct {
	mu sync.RWMutex

	schemas  map[string]*schema.Schema
	messages map[string]*schema.Message
	enums    map[string]*schema.Enum
	services map[string]*schema.Service
	aliases  map[string]*schema.TypeAlias

	// extensions maps (host message qualified name, field number) -> the
	// extension Field declared for that host, regardless of which message
	// the `extend` block physically appeared in.
	extensions map[extensionKey]*schema.Field

	// fieldIndex gives O(1) field-number lookup per message: a dense
	// array when the field-number space is dense, a map fallback
	// otherwise. Built once per message, at RegisterMessage time (or at
	// GetOrCreateMapEntryMessage time for synthetic map-entry messages).
	fieldIndex map[*schema.Message]*fieldVector

	// mapEntries caches synthetic key/value entry messages created for
	// map fields so repeated calls for the same field return the same
	// descriptor instance.
	mapEntries map[string]*schema.Message
}

type extensionKey struct {
	host   string
	number int32
}

// NewRegistry creates an empty Registry, ready for Register* calls.
func NewRegistry() *Registry {
	return &Registry{
		schemas:    make(map[string]*schema.Schema),
		messages:   make(map[string]*schema.Message),
		enums:      make(map[string]*schema.Enum),
		services:   make(map[string]*schema.Service),
		aliases:    make(map[string]*schema.TypeAlias),
		extensions: make(map[extensionKey]*schema.Field),
		fieldIndex: make(map[*schema.Message]*fieldVector),
		mapEntries: make(map[string]*schema.Message),
	}
}

// ListMessages returns the qualified names of every registered message.
func (r *Registry) ListMessages() []string { return keysOf(r.messages, &r.mu) }

// ListEnums returns the qualified names of every registered enum.
func (r *Registry) ListEnums() []string { return keysOf(r.enums, &r.mu) }

// ListServices returns the qualified names of every registered service.
func (r *Registry) ListServices() []string { return keysOf(r.services, &r.mu) }

func keysOf[V any](m map[string]V, mu *sync.RWMutex) []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// RegisterSchema registers a Schema and recursively registers every
// top-level Message, Enum and Service it declares. Schema.Syntax must be
// "proto2". Rebinding an already-registered schema name is an error.
func (r *Registry) RegisterSchema(s *schema.Schema) error {
	if s.Syntax != "proto2" {
		return fmt.Errorf("registry: schema %q: unsupported syntax %q, only proto2 is targeted", s.Name, s.Syntax)
	}

	r.mu.Lock()
	if _, exists := r.schemas[s.Name]; exists {
		r.mu.Unlock()
		return fmt.Errorf("registry: schema %q already registered", s.Name)
	}
	r.schemas[s.Name] = s
	r.mu.Unlock()

	parent := &schema.ParentRef{Kind: schema.ParentIsSchema, QualifiedName: s.Package}
	for _, msg := range s.Messages {
		if err := r.RegisterMessage(msg, parent); err != nil {
			return err
		}
	}
	for _, e := range s.Enums {
		if err := r.RegisterEnum(e, parent); err != nil {
			return err
		}
	}
	for _, svc := range s.Services {
		if err := r.registerService(svc, s.Package); err != nil {
			return err
		}
	}
	for _, ext := range s.Extensions {
		if err := r.RegisterExtension(ext.ExtendsMessage, ext); err != nil {
			return err
		}
	}
	return nil
}

// RegisterMessage registers msg (and, recursively, its nested types) under
// the qualified name formed from parent. It validates field-number range,
// reserved-range exclusion and uniqueness (spec invariant: field numbers
// are unique within a Message and its extension ranges).
func (r *Registry) RegisterMessage(msg *schema.Message, parent *schema.ParentRef) error {
	msg.Parent = parent
	qualified := r.qualifiedNameOf(parent, msg.Name)

	if err := validateFieldNumbers(msg); err != nil {
		return fmt.Errorf("registry: message %q: %w", qualified, err)
	}

	r.mu.Lock()
	if _, exists := r.messages[qualified]; exists {
		r.mu.Unlock()
		return fmt.Errorf("registry: message %q already registered", qualified)
	}
	r.messages[qualified] = msg
	r.fieldIndex[msg] = buildFieldVector(msg)
	r.mu.Unlock()

	nestedParent := &schema.ParentRef{Kind: schema.ParentIsMessage, QualifiedName: qualified}
	for _, nested := range msg.NestedTypes {
		if err := r.RegisterMessage(nested, nestedParent); err != nil {
			return err
		}
	}
	for _, e := range msg.NestedEnums {
		if err := r.RegisterEnum(e, nestedParent); err != nil {
			return err
		}
	}
	for _, ext := range msg.Extensions {
		if err := r.RegisterExtension(ext.ExtendsMessage, ext); err != nil {
			return err
		}
	}
	return nil
}

// RegisterEnum registers e under the qualified name formed from parent.
// Invariant: within one Enum, symbolic value names are unique; wire
// indices may repeat only when the Enum declares AllowAlias.
func (r *Registry) RegisterEnum(e *schema.Enum, parent *schema.ParentRef) error {
	qualified := r.qualifiedNameOf(parent, e.Name)

	seenNames := make(map[string]struct{}, len(e.Values))
	seenNumbers := make(map[int32]struct{}, len(e.Values))
	for _, v := range e.Values {
		if _, dup := seenNames[v.Name]; dup {
			return fmt.Errorf("registry: enum %q: duplicate value name %q", qualified, v.Name)
		}
		seenNames[v.Name] = struct{}{}
		if _, dup := seenNumbers[v.Number]; dup && !e.AllowAlias {
			return fmt.Errorf("registry: enum %q: duplicate wire index %d without allow_alias", qualified, v.Number)
		}
		seenNumbers[v.Number] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.enums[qualified]; exists {
		return fmt.Errorf("registry: enum %q already registered", qualified)
	}
	r.enums[qualified] = e
	return nil
}

// RegisterExtension records field as an extension of the message named by
// hostQualifiedName. The host must declare an extension range that
// contains field.Number, and must not declare an ordinary field with that
// number (schema.ErrDuplicateFieldNumber).
func (r *Registry) RegisterExtension(hostQualifiedName string, field *schema.Field) error {
	host, err := r.GetMessage(hostQualifiedName)
	if err != nil {
		return fmt.Errorf("registry: extension %q: host message %q not found: %w", field.Name, hostQualifiedName, err)
	}
	if !extensionRangesContain(host, field.Number) {
		return fmt.Errorf("registry: extension %q: field number %d is not within an extension range of %q", field.Name, field.Number, hostQualifiedName)
	}
	if _, clash := r.FieldByNumber(host, field.Number); clash {
		return fmt.Errorf("registry: extension %q: %w: %d is already a field of %q", field.Name, schema.ErrDuplicateFieldNumber, field.Number, hostQualifiedName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := extensionKey{host: hostQualifiedName, number: field.Number}
	if _, exists := r.extensions[key]; exists {
		return fmt.Errorf("registry: extension field %d of %q already registered", field.Number, hostQualifiedName)
	}
	r.extensions[key] = field
	return nil
}

// RegisterTypeAlias registers a named, first-class field type backed by
// serializer/deserializer closures.
func (r *Registry) RegisterTypeAlias(alias *schema.TypeAlias) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.aliases[alias.Name]; exists {
		return fmt.Errorf("registry: type alias %q already registered", alias.Name)
	}
	r.aliases[alias.Name] = alias
	return nil
}

func (r *Registry) registerService(svc *schema.Service, pkg string) error {
	qualified := qualify(pkg, svc.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.services[qualified]; exists {
		return fmt.Errorf("registry: service %q already registered", qualified)
	}
	r.services[qualified] = svc
	return nil
}

// --- lookups ---

// GetMessage resolves name, trying an exact qualified-name match first and
// falling back to a dotted-suffix match for bare names.
func (r *Registry) GetMessage(name string) (*schema.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := r.messages[name]; ok {
		return msg, nil
	}
	if msg, ok := lookupBySuffix(r.messages, name); ok {
		return msg, nil
	}
	return nil, fmt.Errorf("registry: message not found: %s", name)
}

// GetEnum resolves an Enum by qualified or bare name.
func (r *Registry) GetEnum(name string) (*schema.Enum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.enums[name]; ok {
		return e, nil
	}
	if e, ok := lookupBySuffix(r.enums, name); ok {
		return e, nil
	}
	return nil, fmt.Errorf("registry: enum not found: %s", name)
}

// GetService resolves a Service by qualified or bare name.
func (r *Registry) GetService(name string) (*schema.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if svc, ok := r.services[name]; ok {
		return svc, nil
	}
	if svc, ok := lookupBySuffix(r.services, name); ok {
		return svc, nil
	}
	return nil, fmt.Errorf("registry: service not found: %s", name)
}

// GetTypeAlias resolves a registered TypeAlias by name.
func (r *Registry) GetTypeAlias(name string) (*schema.TypeAlias, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.aliases[name]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("registry: type alias not found: %s", name)
}

// FieldByNumber looks up a Field within msg by its wire field number in
// O(1), via the field-vector built at registration time.
func (r *Registry) FieldByNumber(msg *schema.Message, number int32) (*schema.Field, bool) {
	r.mu.RLock()
	fv := r.fieldIndex[msg]
	r.mu.RUnlock()
	if fv == nil {
		return nil, false
	}
	return fv.lookup(number)
}

// ExtensionField looks up the extension Field registered for field number
// number on the message named hostQualifiedName.
func (r *Registry) ExtensionField(hostQualifiedName string, number int32) (*schema.Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.extensions[extensionKey{host: hostQualifiedName, number: number}]
	return f, ok
}

// IsExtendable reports whether msg declares any extension range at all.
func IsExtendable(msg *schema.Message) bool {
	return len(msg.ExtensionRanges) > 0
}

// GetOrCreateMapEntryMessage returns the synthetic key/value entry message
// backing a map field, creating and caching it on first use. Map fields
// are wire-encoded as repeated messages with field 1 = key, field 2 =
// value, exactly like the protobuf spec's generated *Entry messages.
func (r *Registry) GetOrCreateMapEntryMessage(ownerQualifiedName, fieldName string, keyType, valueType *schema.FieldType) *schema.Message {
	cacheKey := ownerQualifiedName + "." + fieldName
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.mapEntries[cacheKey]; ok {
		return entry
	}
	entry := &schema.Message{
		Name:     fieldName + "Entry",
		MapEntry: true,
		Kind:     schema.KindRegularMessage,
		Fields: []*schema.Field{
			{Name: "key", Number: 1, Label: schema.LabelOptional, Type: *keyType},
			{Name: "value", Number: 2, Label: schema.LabelOptional, Type: *valueType},
		},
	}
	r.mapEntries[cacheKey] = entry
	r.fieldIndex[entry] = buildFieldVector(entry)
	return entry
}

// QualifiedName rebuilds msg's dotted qualified name from its immediate
// Parent reference (which already holds the parent's full qualified name),
// the same naming RegisterMessage performs. A message with no Parent, such
// as a synthetic map-entry message, yields its bare Name.
func (r *Registry) QualifiedName(msg *schema.Message) (string, error) {
	if msg.Parent == nil {
		return msg.Name, nil
	}
	switch msg.Parent.Kind {
	case schema.ParentIsSchema:
		return qualify(msg.Parent.QualifiedName, msg.Name), nil
	case schema.ParentIsMessage:
		return qualify(msg.Parent.QualifiedName, msg.Name), nil
	default:
		return "", fmt.Errorf("registry: message %q has parent of unknown kind %q", msg.Name, msg.Parent.Kind)
	}
}

// --- helpers ---

func (r *Registry) qualifiedNameOf(parent *schema.ParentRef, name string) string {
	if parent == nil {
		return name
	}
	return qualify(parent.QualifiedName, name)
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func lookupBySuffix[V any](table map[string]V, name string) (V, bool) {
	var zero V
	for fullName, v := range table {
		if fullName == name || hasDottedSuffix(fullName, name) {
			return v, true
		}
	}
	return zero, false
}

func hasDottedSuffix(fullName, suffix string) bool {
	if len(fullName) <= len(suffix) {
		return false
	}
	return fullName[len(fullName)-len(suffix)-1:] == "."+suffix
}

func extensionRangesContain(msg *schema.Message, number int32) bool {
	for _, rng := range msg.ExtensionRanges {
		if rng.Contains(number) {
			return true
		}
	}
	return false
}

func validateFieldNumbers(msg *schema.Message) error {
	seen := make(map[int32]struct{}, len(msg.Fields))
	check := func(n int32) error {
		if n < minFieldNumber || n > maxFieldNumber {
			return fmt.Errorf("%w: %d not in [%d, %d]", schema.ErrFieldNumberOutOfRange, n, minFieldNumber, maxFieldNumber)
		}
		if n >= reservedRangeStart && n <= reservedRangeEnd {
			return fmt.Errorf("%w: %d falls within the reserved range [%d, %d]", schema.ErrFieldNumberOutOfRange, n, reservedRangeStart, reservedRangeEnd)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: %d", schema.ErrDuplicateFieldNumber, n)
		}
		seen[n] = struct{}{}
		return nil
	}
	for _, f := range msg.Fields {
		if err := check(f.Number); err != nil {
			return err
		}
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			if err := check(f.Number); err != nil {
				return err
			}
		}
	}
	for _, rng := range msg.ExtensionRanges {
		if rng.From < minFieldNumber || rng.To > maxFieldNumber || rng.From > rng.To {
			return fmt.Errorf("invalid extension range [%d, %d]", rng.From, rng.To)
		}
	}
	return nil
}
