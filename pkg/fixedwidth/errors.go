package fixedwidth

import (
	"errors"
	"fmt"
)

// Schema build errors.
var (
	ErrDuplicateField      = errors.New("duplicate field name in class field list")
	ErrDuplicateActivation = errors.New("duplicate activation value among siblings")
	ErrAmbiguousChild      = errors.New("more than one unconditional child")
	ErrMixedChildren       = errors.New("unconditional child alongside activation values")
	ErrNoDiscriminator     = errors.New("activation value given but parent has no discriminator")
	ErrUnknownParent       = errors.New("parent class not defined")
	ErrUnknownField        = errors.New("field name not in class field table")
	ErrUnknownAuxiliary    = errors.New("export auxiliary names no child class")
	ErrDuplicateLabel      = errors.New("duplicate class label")
)

// DecodeError reports malformed text in a field whose encoding requires a
// number or coordinate. It is fatal to ingestion and carries enough context
// to locate the offending record in the source file.
type DecodeError struct {
	Field  string // field name
	Raw    string // the raw slice that failed to decode
	Line   string // the whole source line
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding field %q: %s (value %q in record %q)", e.Field, e.Reason, e.Raw, e.Line)
}
