package schema

import "errors"

// Sentinel errors for descriptor registration-time violations, distinct
// from the wire package's decode-time sentinels of the same shape: a tag
// parsed off the wire and a field number declared in a descriptor fail
// the same numeric range check for different reasons at different times,
// so each gets its own identity for errors.Is.
var (
	// ErrFieldNumberOutOfRange is returned when a descriptor declares a
	// field number outside [1, 2^29-1] or inside the reserved
	// 19000-19999 range.
	ErrFieldNumberOutOfRange = errors.New("schema: field number out of range")
	// ErrDuplicateFieldNumber is returned when two fields (or a field and
	// an extension) on the same message declare the same number.
	ErrDuplicateFieldNumber = errors.New("schema: duplicate field number")
)
