package fixedwidth

import (
	"fmt"
	"strconv"
)

// ContinuationField is the conventional name of the continuation-number
// column. Any class whose merged field table contains a field with this name
// gets continuation handling during dispatch: records with a continuation
// number greater than 1 are dropped and counted.
const ContinuationField = "continuation_record_no"

// Class is one node of the schema tree. Structure (field table, identity key,
// discriminator, children) is fixed once the Builder returns; the instance
// store and diagnostic counters are mutated during ingestion only.
type Class struct {
	label      string
	parent     *Class
	activation string // parent discriminator value selecting this class; "" for root and unconditional children
	disc       *Field // discriminator selecting among children, nil if none
	fields     []Field
	fieldIndex map[string]int
	keyFields  []Field // empty marks an auxiliary class
	children   map[string]*Class
	childOrder []*Class
	uncond     *Class // the single always-descend child, if any
	exportAux  *Class
	contField  *Field

	instances map[string]*Record
	keyOrder  []string
	unknown   map[string]int
	unknownOrder []string
	unusedConts  map[int64]int
	contOrder    []int64
}

// Label returns the class's display name.
func (c *Class) Label() string { return c.label }

// Parent returns the owning class, or nil for the root.
func (c *Class) Parent() *Class { return c.parent }

// Keyed reports whether instances of this class are stored under an identity
// key. Unkeyed classes are auxiliary: their records merge into an ancestor.
func (c *Class) Keyed() bool { return len(c.keyFields) > 0 }

// Children returns the child classes in definition order.
func (c *Class) Children() []*Class { return c.childOrder }

// Fields returns the merged field table in root-to-leaf order. A field
// redeclared by a descendant keeps its inherited position.
func (c *Class) Fields() []Field { return c.fields }

// FieldsForExport returns the field table consumers should treat as this
// class's columns. When an export auxiliary is configured the child's table
// substitutes for this class's own, covering classes that store almost
// nothing themselves and delegate their attributes to a sole auxiliary child.
func (c *Class) FieldsForExport() []Field {
	if c.exportAux != nil {
		return c.exportAux.fields
	}
	return c.fields
}

// Instances returns the stored records in first-seen key order.
func (c *Class) Instances() []*Record {
	out := make([]*Record, 0, len(c.keyOrder))
	for _, k := range c.keyOrder {
		out = append(out, c.instances[k])
	}
	return out
}

// lookup resolves a field name in the pre-merged table. Ancestor walking is
// unnecessary: inherited fields are folded in at build time.
func (c *Class) lookup(name string) (Field, bool) {
	i, ok := c.fieldIndex[name]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// get decodes the named field over text, or returns nil if the name is absent
// from the class's field table.
func (c *Class) get(text, name string) (any, error) {
	f, ok := c.lookup(name)
	if !ok {
		return nil, nil
	}
	return Decode(text, f)
}

// identityKey computes the store key for one line by decoding the class's key
// fields. Composite keys concatenate the decoded values.
func (c *Class) identityKey(line string) (string, error) {
	if len(c.keyFields) == 1 {
		v, err := Decode(line, c.keyFields[0])
		if err != nil {
			return "", err
		}
		return keyString(v), nil
	}
	key := ""
	for i, f := range c.keyFields {
		v, err := Decode(line, f)
		if err != nil {
			return "", err
		}
		if i > 0 {
			key += "\x1f"
		}
		key += keyString(v)
	}
	return key, nil
}

// keyString renders a decoded value as a map key or child-lookup key.
func keyString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(x)
	}
}

func (c *Class) noteUnknown(value string) {
	if _, seen := c.unknown[value]; !seen {
		c.unknownOrder = append(c.unknownOrder, value)
	}
	c.unknown[value]++
}

func (c *Class) noteUnusedContinuation(n int64) {
	if _, seen := c.unusedConts[n]; !seen {
		c.contOrder = append(c.contOrder, n)
	}
	c.unusedConts[n]++
}

// Tree is a built schema plus the mutable state of one ingestion run. Build a
// fresh tree per source file; stores and counters are owned by the tree value,
// not shared process state.
type Tree struct {
	root *Class
}

// Root returns the tree's base class.
func (t *Tree) Root() *Class { return t.root }

// Find returns the class with the given label, searching the whole tree, or
// nil if no class carries it.
func (t *Tree) Find(label string) *Class {
	var found *Class
	t.Walk(func(c *Class) {
		if found == nil && c.label == label {
			found = c
		}
	})
	return found
}

// Walk visits every class depth-first in definition order.
func (t *Tree) Walk(fn func(*Class)) {
	walk(t.root, fn)
}

func walk(c *Class, fn func(*Class)) {
	fn(c)
	for _, child := range c.childOrder {
		walk(child, fn)
	}
}
