package fixedwidth

import "fmt"

// ClassDef declares one schema class for the Builder.
//
// Activation is the value of the parent's discriminator that selects this
// class; leave it empty for a child reached unconditionally (a parent without
// a discriminator may have at most one such child). Key lists the identity-key
// field names in order; an empty Key marks an auxiliary class whose records
// merge into the parent instance instead of being stored. ExportAuxiliary
// optionally names a child class whose field table substitutes for this one
// in FieldsForExport.
type ClassDef struct {
	Label           string
	Parent          string // label of the owning class; empty only for the root
	Activation      string
	Discriminator   string // own field name selecting among children; empty if none
	Fields          []Field
	Key             []string
	ExportAuxiliary string
}

// Builder assembles a schema tree from class definitions. Definitions are
// validated as they are added; the first problem is remembered and returned
// by Build. The resulting Tree is owned by the caller and carries the mutable
// ingestion state, so build a fresh tree per run.
type Builder struct {
	root    *Class
	byLabel map[string]*Class
	exports map[*Class]string // deferred ExportAuxiliary resolution
	err     error
}

// NewBuilder starts a tree from the root class definition. The root has no
// parent and no activation value.
func NewBuilder(root ClassDef) *Builder {
	b := &Builder{
		byLabel: make(map[string]*Class),
		exports: make(map[*Class]string),
	}
	b.root = b.newClass(root, nil)
	return b
}

// Add defines a class under its named parent. Add returns the builder for
// chaining.
func (b *Builder) Add(def ClassDef) *Builder {
	if b.err != nil {
		return b
	}
	parent, ok := b.byLabel[def.Parent]
	if !ok {
		b.fail(def.Label, ErrUnknownParent)
		return b
	}
	c := b.newClass(def, parent)
	if b.err != nil {
		return b
	}

	if def.Activation == "" {
		if parent.disc != nil {
			b.fail(def.Label, ErrMixedChildren)
			return b
		}
		if parent.uncond != nil {
			b.fail(def.Label, ErrAmbiguousChild)
			return b
		}
		parent.uncond = c
	} else {
		if parent.disc == nil {
			b.fail(def.Label, ErrNoDiscriminator)
			return b
		}
		if parent.uncond != nil {
			b.fail(def.Label, ErrAmbiguousChild)
			return b
		}
		if _, dup := parent.children[def.Activation]; dup {
			b.fail(def.Label, ErrDuplicateActivation)
			return b
		}
		parent.children[def.Activation] = c
	}
	parent.childOrder = append(parent.childOrder, c)
	return b
}

// Build finishes validation and returns the tree.
func (b *Builder) Build() (*Tree, error) {
	if b.err != nil {
		return nil, b.err
	}
	// ExportAuxiliary may name a child defined after its parent, so resolve
	// only now.
	for c, label := range b.exports {
		var aux *Class
		for _, child := range c.childOrder {
			if child.label == label {
				aux = child
				break
			}
		}
		if aux == nil {
			return nil, fmt.Errorf("class %q: %w: %q", c.label, ErrUnknownAuxiliary, label)
		}
		c.exportAux = aux
	}
	return &Tree{root: b.root}, nil
}

// newClass constructs a node with its merged field table and resolved key and
// discriminator fields.
func (b *Builder) newClass(def ClassDef, parent *Class) *Class {
	if _, dup := b.byLabel[def.Label]; dup {
		b.fail(def.Label, ErrDuplicateLabel)
		return nil
	}

	c := &Class{
		label:       def.Label,
		parent:      parent,
		activation:  def.Activation,
		children:    make(map[string]*Class),
		instances:   make(map[string]*Record),
		unknown:     make(map[string]int),
		unusedConts: make(map[int64]int),
	}

	// Merge: inherited fields first, own fields after. An own field that
	// shadows an inherited one replaces it in place; two own fields sharing a
	// name are rejected rather than silently last-wins.
	c.fields = make([]Field, 0, len(def.Fields))
	c.fieldIndex = make(map[string]int)
	if parent != nil {
		c.fields = append(c.fields, parent.fields...)
		for i, f := range c.fields {
			c.fieldIndex[f.Name] = i
		}
	}
	inherited := len(c.fields)
	for _, f := range def.Fields {
		if i, exists := c.fieldIndex[f.Name]; exists {
			if i >= inherited {
				b.fail(def.Label, ErrDuplicateField)
				return nil
			}
			c.fields[i] = f
			continue
		}
		c.fieldIndex[f.Name] = len(c.fields)
		c.fields = append(c.fields, f)
	}

	if def.Discriminator != "" {
		f, ok := c.lookup(def.Discriminator)
		if !ok {
			b.fail(def.Label, ErrUnknownField)
			return nil
		}
		c.disc = &f
	}
	for _, name := range def.Key {
		f, ok := c.lookup(name)
		if !ok {
			b.fail(def.Label, ErrUnknownField)
			return nil
		}
		c.keyFields = append(c.keyFields, f)
	}
	if f, ok := c.lookup(ContinuationField); ok {
		c.contField = &f
	}
	if def.ExportAuxiliary != "" {
		b.exports[c] = def.ExportAuxiliary
	}

	b.byLabel[def.Label] = c
	return c
}

func (b *Builder) fail(label string, err error) {
	if b.err == nil {
		b.err = fmt.Errorf("class %q: %w", label, err)
	}
}
