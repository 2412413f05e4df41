package registry

import "github.com/sionescu/cl-protobufs/schema"

// fieldVector gives O(1) lookup of a Field by wire number. When the
// number space used by a message is dense (the common case: fields
// numbered 1..N with few gaps) it is a directly-indexed slice; otherwise
// it falls back to an associative map keyed by field number.
type fieldVector struct {
	dense       []*schema.Field // dense[number-offset] == field, nil if absent
	offset      int32
	sparse      map[int32]*schema.Field
}

// denseThreshold bounds how much slack (gaps between the lowest and
// highest field number versus the field count) we're willing to pay in
// slice memory before preferring the sparse map.
const denseThreshold = 4

func buildFieldVector(msg *schema.Message) *fieldVector {
	var numbers []int32
	for _, f := range msg.Fields {
		numbers = append(numbers, f.Number)
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			numbers = append(numbers, f.Number)
		}
	}
	if len(numbers) == 0 {
		return &fieldVector{sparse: map[int32]*schema.Field{}}
	}

	min, max := numbers[0], numbers[0]
	for _, n := range numbers[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	span := int64(max) - int64(min) + 1
	if span > int64(len(numbers))*denseThreshold {
		return buildSparse(msg)
	}

	fv := &fieldVector{offset: min, dense: make([]*schema.Field, span)}
	place := func(f *schema.Field) {
		fv.dense[int64(f.Number)-int64(min)] = f
	}
	for _, f := range msg.Fields {
		place(f)
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			place(f)
		}
	}
	return fv
}

func buildSparse(msg *schema.Message) *fieldVector {
	sparse := make(map[int32]*schema.Field, len(msg.Fields))
	for _, f := range msg.Fields {
		sparse[f.Number] = f
	}
	for _, oneof := range msg.OneofGroups {
		for _, f := range oneof.Fields {
			sparse[f.Number] = f
		}
	}
	return &fieldVector{sparse: sparse}
}

func (fv *fieldVector) lookup(number int32) (*schema.Field, bool) {
	if fv.sparse != nil {
		f, ok := fv.sparse[number]
		return f, ok
	}
	idx := int64(number) - int64(fv.offset)
	if idx < 0 || idx >= int64(len(fv.dense)) {
		return nil, false
	}
	f := fv.dense[idx]
	return f, f != nil
}
