package wire

import "os"

// Config controls decode-time leniency knobs. Defaults match this
// implementation's documented invariants: unknown enum numbers decode
// rather than error, map fields surface as map[interface{}]interface{},
// and a wire type that doesn't match the field's declared type is an
// error.
type Config struct {
	// AllowUnknownEnumNumberDecode mirrors this implementation's fixed
	// behavior (decode never fails on an unrecognized enum number) and
	// exists so callers can assert on it; setting it false has no effect,
	// since the decoder always surfaces unknown enum numbers as int32.
	AllowUnknownEnumNumberDecode bool

	// MapGenericKeys mirrors the fixed map-decode shape
	// (map[interface{}]interface{}); setting it false has no effect.
	MapGenericKeys bool

	// StrictWireTypeOnDecode: when true (default), a field whose wire
	// type doesn't match its declared type is a decode error. When
	// false, the mismatch check is skipped and the decoder reads the
	// bytes as if the declared type were correct, which can desync the
	// buffer on a genuine mismatch; only useful against producers known
	// to disagree with the schema in a field's wire type alone.
	StrictWireTypeOnDecode bool
}

var config = Config{
	AllowUnknownEnumNumberDecode: true,
	MapGenericKeys:               true,
	StrictWireTypeOnDecode:       true,
}

// SetConfig replaces the package-wide decode configuration.
func SetConfig(c Config) { config = c }

func init() {
	if v := os.Getenv("CL_PROTOBUFS_STRICT_WIRE"); v == "0" || v == "false" {
		config.StrictWireTypeOnDecode = false
	}
}

// requireWireType enforces that got matches want unless
// StrictWireTypeOnDecode has been disabled.
func requireWireType(got, want WireType) error {
	if got == want || !config.StrictWireTypeOnDecode {
		return nil
	}
	return ErrWireTypeMismatch
}
