// Package protobufs is a schema-driven proto2 wire codec: no generated
// code, no .proto parser. Callers describe their messages with the schema
// package's descriptor types, register them once with a Registry, and get
// Serialize/Deserialize for that schema through a Codec.
package protobufs

import (
	"fmt"

	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
	"github.com/sionescu/cl-protobufs/wire"
)

// Codec is a thin, stateless wrapper over a Registry: it resolves a
// message type name once per call and delegates to the wire package.
type Codec struct {
	registry *registry.Registry
}

// New creates a Codec backed by reg. reg must already have every message
// this Codec will be asked to serialize or deserialize registered.
func New(reg *registry.Registry) *Codec {
	return &Codec{registry: reg}
}

// Registry returns the Codec's backing Registry, for callers that need to
// register more schemas or inspect the symbol table directly.
func (c *Codec) Registry() *registry.Registry { return c.registry }

// Serialize encodes rec as messageType's wire format.
func (c *Codec) Serialize(rec *wire.Record, messageType string) ([]byte, error) {
	msg, err := c.resolve(messageType)
	if err != nil {
		return nil, err
	}
	return wire.EncodeMessage(rec, msg, c.registry)
}

// SerializeInto encodes rec as messageType's wire format via Serialize and
// appends the encoded bytes to the end of dst, returning the extended slice.
func (c *Codec) SerializeInto(dst []byte, rec *wire.Record, messageType string) ([]byte, error) {
	encoded, err := c.Serialize(rec, messageType)
	if err != nil {
		return nil, err
	}
	return append(dst, encoded...), nil
}

// Deserialize decodes data as messageType's wire format into a fresh
// Record.
func (c *Codec) Deserialize(data []byte, messageType string) (*wire.Record, error) {
	msg, err := c.resolve(messageType)
	if err != nil {
		return nil, err
	}
	return wire.DecodeMessage(data, msg, c.registry)
}

// DeserializeInto decodes data as messageType's wire format, merging the
// decoded fields into an existing Record rather than returning a new one.
// Each decoded field replaces dst's value under the same name, repeated and
// map fields included (they are overwritten, not appended to); fields of
// dst absent from data are kept, and decoded unknown fields are appended
// to dst.Unknown. Decoded extension values are not copied into dst.
func (c *Codec) DeserializeInto(dst *wire.Record, data []byte, messageType string) error {
	decoded, err := c.Deserialize(data, messageType)
	if err != nil {
		return err
	}
	for name, value := range decoded.Fields {
		dst.Fields[name] = value
	}
	dst.Unknown = append(dst.Unknown, decoded.Unknown...)
	return nil
}

func (c *Codec) resolve(messageType string) (*schema.Message, error) {
	msg, err := c.registry.GetMessage(messageType)
	if err != nil {
		return nil, fmt.Errorf("protobufs: message type not found: %s", messageType)
	}
	return msg, nil
}
