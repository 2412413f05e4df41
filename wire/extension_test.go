package wire

import (
	"errors"
	"testing"

	"github.com/sionescu/cl-protobufs/schema"
)

func extendableHost(name string) *schema.Message {
	return &schema.Message{Name: name, ExtensionRanges: []schema.ExtensionRange{{From: 100, To: 199}}}
}

func TestExtensionStoreGetSetHas(t *testing.T) {
	host := extendableHost("Host")
	store := NewExtensionStore()

	if _, ok := store.Get(host, 100); ok {
		t.Fatal("expected no value before Set")
	}
	if err := store.Set(host, 100, "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !store.Has(host, 100) {
		t.Fatal("expected Has true after Set")
	}
	v, ok := store.Get(host, 100)
	if !ok || v != "hello" {
		t.Fatalf("got (%v, %v)", v, ok)
	}

	if err := store.Clear(host, 100); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.Has(host, 100) {
		t.Fatal("expected Has false after Clear")
	}
}

func TestExtensionStoreScopedByHost(t *testing.T) {
	hostA := extendableHost("A")
	hostB := extendableHost("B")
	store := NewExtensionStore()

	store.Set(hostA, 100, "a")
	store.Set(hostB, 100, "b")

	va, _ := store.Get(hostA, 100)
	vb, _ := store.Get(hostB, 100)
	if va != "a" || vb != "b" {
		t.Fatalf("cross-host collision: got (%v, %v)", va, vb)
	}
}

func TestExtensionStoreAll(t *testing.T) {
	host := extendableHost("Host")
	store := NewExtensionStore()
	store.Set(host, 100, "one")
	store.Set(host, 101, "two")

	all := store.All(host)
	if len(all) != 2 || all[100] != "one" || all[101] != "two" {
		t.Fatalf("got %v", all)
	}
}

func TestExtensionStoreNonExtendableHost(t *testing.T) {
	host := &schema.Message{Name: "NotExtendable"}
	store := NewExtensionStore()

	if _, ok := store.Get(host, 100); ok {
		t.Fatal("Get on non-extendable host should report ok=false")
	}
	if store.Has(host, 100) {
		t.Fatal("Has on non-extendable host should be false")
	}
	if err := store.Set(host, 100, "x"); !errors.Is(err, ErrExtensionNotFound) {
		t.Errorf("Set on non-extendable host: got %v, want ErrExtensionNotFound", err)
	}
	if err := store.Clear(host, 100); !errors.Is(err, ErrExtensionNotFound) {
		t.Errorf("Clear on non-extendable host: got %v, want ErrExtensionNotFound", err)
	}
}
