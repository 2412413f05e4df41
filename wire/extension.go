package wire

import (
	"fmt"
	"sync"

	"github.com/sionescu/cl-protobufs/registry"
	"github.com/sionescu/cl-protobufs/schema"
)

// extensionKey identifies one extension slot on one message instance.
type extensionKey struct {
	host   *schema.Message
	number int32
}

// ExtensionStore holds decoded/assigned extension values for a set of
// message instances, keyed by (host message descriptor, field number).
// Unlike the Registry's extension table (which maps a field number to its
// descriptor, process-wide), an ExtensionStore holds per-instance values
// and is owned by the caller, not shared globally.
//
// Every accessor checks host's extendability itself via registry.IsExtendable
// rather than trust the caller: Has defaults to false for a non-extendable
// host, Get likewise returns (nil, false), and Set/Clear fail with
// ErrExtensionNotFound rather than silently succeeding.
type ExtensionStore struct {
	mu     sync.RWMutex
	values map[extensionKey]interface{}
}

// NewExtensionStore creates an empty store.
func NewExtensionStore() *ExtensionStore {
	return &ExtensionStore{values: make(map[extensionKey]interface{})}
}

// Get returns the stored value for (host, number), if any. Always
// (nil, false) when host declares no extension range.
func (s *ExtensionStore) Get(host *schema.Message, number int32) (interface{}, bool) {
	if !registry.IsExtendable(host) {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[extensionKey{host, number}]
	return v, ok
}

// Set records value for (host, number). Fails with ErrExtensionNotFound
// if host declares no extension range at all; it does not otherwise
// validate that number falls within a declared range or is registered —
// that is the message codec's job before it calls Set.
func (s *ExtensionStore) Set(host *schema.Message, number int32, value interface{}) error {
	if !registry.IsExtendable(host) {
		return fmt.Errorf("%w: %s has no extension range", ErrExtensionNotFound, host.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[extensionKey{host, number}] = value
	return nil
}

// Has reports whether a value is stored for (host, number). Always false
// when host declares no extension range.
func (s *ExtensionStore) Has(host *schema.Message, number int32) bool {
	if !registry.IsExtendable(host) {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[extensionKey{host, number}]
	return ok
}

// Clear removes any stored value for (host, number). Fails with
// ErrExtensionNotFound if host declares no extension range at all.
func (s *ExtensionStore) Clear(host *schema.Message, number int32) error {
	if !registry.IsExtendable(host) {
		return fmt.Errorf("%w: %s has no extension range", ErrExtensionNotFound, host.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, extensionKey{host, number})
	return nil
}

// All returns every (number, value) pair stored for host, for iteration
// during encode.
func (s *ExtensionStore) All(host *schema.Message) map[int32]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int32]interface{})
	for k, v := range s.values {
		if k.host == host {
			out[k.number] = v
		}
	}
	return out
}
