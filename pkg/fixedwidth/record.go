package fixedwidth

import (
	"fmt"
	"strings"
)

// Record is one decoded line bound to the most specific class it matched. The
// raw text is immutable; the auxiliary record, when present, holds the
// one-to-one sub-record whose fields extend this one.
type Record struct {
	text  string
	class *Class
	aux   *Record
}

// Text returns the raw source line.
func (r *Record) Text() string { return r.text }

// Class returns the owning schema class.
func (r *Record) Class() *Class { return r.class }

// Auxiliary returns the attached auxiliary record, or nil.
func (r *Record) Auxiliary() *Record { return r.aux }

// attachAuxiliary binds an auxiliary record. The binding is first-write-wins:
// once set it is never reassigned.
func (r *Record) attachAuxiliary(aux *Record) {
	if r.aux == nil {
		r.aux = aux
	}
}

// Get decodes the named field over this record's text. A name absent from the
// owning class's table, or a field that decodes to nil, falls through to the
// auxiliary record when one is attached. The final fallback is nil, not an
// error.
func (r *Record) Get(name string) (any, error) {
	v, err := r.class.get(r.text, name)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	if r.aux != nil {
		return r.aux.class.get(r.aux.text, name)
	}
	return nil, nil
}

// Name decodes the identity-key fields from this record's text for display.
// Composite keys join with "/". Records of auxiliary classes have no name.
func (r *Record) Name() (string, error) {
	if !r.class.Keyed() {
		return "", nil
	}
	parts := make([]string, 0, len(r.class.keyFields))
	for _, f := range r.class.keyFields {
		v, err := Decode(r.text, f)
		if err != nil {
			return "", err
		}
		parts = append(parts, keyString(v))
	}
	return strings.Join(parts, "/"), nil
}

// Describe renders every field of the owning class, then every field of the
// auxiliary's class, as name=value pairs in field-table order.
func (r *Record) Describe() (string, error) {
	var sb strings.Builder
	name, err := r.Name()
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&sb, "%s[%s] {", r.class.label, name)

	sep := " "
	writeFields := func(text string, fields []Field) error {
		for _, f := range fields {
			v, err := Decode(text, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(&sb, "%s%s=%v", sep, f.Name, v)
			sep = ", "
		}
		return nil
	}

	if err := writeFields(r.text, r.class.fields); err != nil {
		return "", err
	}
	if r.aux != nil {
		if err := writeFields(r.aux.text, r.aux.class.fields); err != nil {
			return "", err
		}
	}
	sb.WriteString(" }")
	return sb.String(), nil
}
