package wire

// Length32 returns the wire size of a fixed32-typed field's value.
func Length32() int { return 4 }

// Length64 returns the wire size of a fixed64-typed field's value.
func Length64() int { return 8 }

// PackedSize computes the total wire size of a packed repeated field: a
// length-delimited payload concatenating n fixed- or varint-encoded
// elements, given a function that sizes a single element's wire index i.
func PackedSize(n int, elementSize func(i int) int) int {
	payload := 0
	for i := 0; i < n; i++ {
		payload += elementSize(i)
	}
	return VarintSize(uint64(payload)) + payload
}
