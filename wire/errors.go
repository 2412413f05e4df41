package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors a caller can match against with errors.Is, one per
// failure kind the codec distinguishes.
var (
	// ErrMalformedVarint is returned when a varint exceeds 10 bytes
	// without terminating.
	ErrMalformedVarint = errors.New("wire: malformed varint (exceeds 10 bytes)")
	// ErrTruncatedVarint is returned when the buffer ends mid-varint.
	ErrTruncatedVarint = errors.New("wire: truncated varint")
	// ErrWireTypeMismatch is returned when a field's wire type on the
	// wire does not match what the schema declares for its field number.
	ErrWireTypeMismatch = errors.New("wire: wire type mismatch")
	// ErrTruncatedSubmessage is returned when a length-delimited payload
	// runs past the end of its enclosing buffer.
	ErrTruncatedSubmessage = errors.New("wire: truncated length-delimited payload")
	// ErrGroupMismatch is returned when an END_GROUP tag's field number
	// does not match the START_GROUP that opened it.
	ErrGroupMismatch = errors.New("wire: mismatched END_GROUP field number")
	// ErrMissingRequired is returned when a required field is absent
	// after a top-level message has been fully decoded.
	ErrMissingRequired = errors.New("wire: missing required field")
	// ErrUnknownEnumValue is returned when encoding a symbolic enum value
	// not present in the enum's descriptor.
	ErrUnknownEnumValue = errors.New("wire: unknown enum value")
	// ErrExtensionNotFound is returned when looking up an extension field
	// number that is not registered for its host message, or when
	// setting an extension on a message with no extension ranges.
	ErrExtensionNotFound = errors.New("wire: extension not found")
	// ErrInvalidUtf8 is returned when a string field's bytes are not
	// valid UTF-8.
	ErrInvalidUtf8 = errors.New("wire: invalid UTF-8 in string field")
	// ErrFieldNumberOutOfRange is returned when a tag's field number
	// falls outside [1, 2^29-1].
	ErrFieldNumberOutOfRange = errors.New("wire: field number out of range")
)

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["outer", "inner", "name"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// wrapWithField wraps an error with a field name, prepending to an
// existing FieldError's path if err already carries one.
func wrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
