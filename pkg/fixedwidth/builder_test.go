package fixedwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootDef() ClassDef {
	return ClassDef{
		Label:         "Rec",
		Discriminator: "kind",
		Fields:        []Field{Raw("kind", 0, 1), Raw("region", 1, 4)},
	}
}

func TestBuilder_Build(t *testing.T) {
	tree, err := NewBuilder(rootDef()).
		Add(ClassDef{
			Label: "Alpha", Parent: "Rec", Activation: "A",
			Fields: []Field{TrimRight("id", 4, 8)},
			Key:    []string{"id"},
		}).
		Build()
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, "Rec", root.Label())
	assert.False(t, root.Keyed())
	require.Len(t, root.Children(), 1)

	alpha := tree.Find("Alpha")
	require.NotNil(t, alpha)
	assert.True(t, alpha.Keyed())
	assert.Same(t, root, alpha.Parent())
}

func TestBuilder_MergedFieldTable(t *testing.T) {
	tree, err := NewBuilder(rootDef()).
		Add(ClassDef{
			Label: "Alpha", Parent: "Rec", Activation: "A",
			Fields: []Field{
				TrimRight("id", 4, 8),
				// Shadows the inherited region with a different range.
				Raw("region", 10, 14),
			},
			Key: []string{"id"},
		}).
		Build()
	require.NoError(t, err)

	alpha := tree.Find("Alpha")
	fields := alpha.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	// Root-to-leaf order; the override keeps the inherited position but
	// carries the child's range.
	assert.Equal(t, []string{"kind", "region", "id"}, names)
	assert.Equal(t, 10, fields[1].Begin)
	assert.Equal(t, 14, fields[1].End)

	// The child table is a superset of the parent's names.
	for _, f := range tree.Root().Fields() {
		_, ok := alpha.lookup(f.Name)
		assert.True(t, ok, "missing inherited field %s", f.Name)
	}
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Tree, error)
		want  error
	}{
		{
			name: "duplicate field in own list",
			build: func() (*Tree, error) {
				return NewBuilder(ClassDef{
					Label:  "Rec",
					Fields: []Field{Raw("id", 0, 4), Raw("id", 4, 8)},
				}).Build()
			},
			want: ErrDuplicateField,
		},
		{
			name: "duplicate activation value",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{Label: "A1", Parent: "Rec", Activation: "A"}).
					Add(ClassDef{Label: "A2", Parent: "Rec", Activation: "A"}).
					Build()
			},
			want: ErrDuplicateActivation,
		},
		{
			name: "two unconditional children",
			build: func() (*Tree, error) {
				return NewBuilder(ClassDef{Label: "Rec", Fields: []Field{Raw("id", 0, 4)}}).
					Add(ClassDef{Label: "C1", Parent: "Rec"}).
					Add(ClassDef{Label: "C2", Parent: "Rec"}).
					Build()
			},
			want: ErrAmbiguousChild,
		},
		{
			name: "unconditional child under discriminator node",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{Label: "C1", Parent: "Rec"}).
					Build()
			},
			want: ErrMixedChildren,
		},
		{
			name: "activation without parent discriminator",
			build: func() (*Tree, error) {
				return NewBuilder(ClassDef{Label: "Rec", Fields: []Field{Raw("id", 0, 4)}}).
					Add(ClassDef{Label: "C1", Parent: "Rec", Activation: "A"}).
					Build()
			},
			want: ErrNoDiscriminator,
		},
		{
			name: "unknown parent",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{Label: "C1", Parent: "Nope", Activation: "A"}).
					Build()
			},
			want: ErrUnknownParent,
		},
		{
			name: "key field missing from table",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{Label: "C1", Parent: "Rec", Activation: "A", Key: []string{"nope"}}).
					Build()
			},
			want: ErrUnknownField,
		},
		{
			name: "discriminator field missing from table",
			build: func() (*Tree, error) {
				return NewBuilder(ClassDef{
					Label: "Rec", Discriminator: "nope",
					Fields: []Field{Raw("id", 0, 4)},
				}).Build()
			},
			want: ErrUnknownField,
		},
		{
			name: "export auxiliary names no child",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{
						Label: "C1", Parent: "Rec", Activation: "A",
						ExportAuxiliary: "Nope",
					}).
					Build()
			},
			want: ErrUnknownAuxiliary,
		},
		{
			name: "duplicate label",
			build: func() (*Tree, error) {
				return NewBuilder(rootDef()).
					Add(ClassDef{Label: "Rec", Parent: "Rec", Activation: "A"}).
					Build()
			},
			want: ErrDuplicateLabel,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuilder_ExportAuxiliary(t *testing.T) {
	tree, err := NewBuilder(rootDef()).
		Add(ClassDef{
			Label: "Alpha", Parent: "Rec", Activation: "A",
			Discriminator:   "sub",
			Fields:          []Field{TrimRight("id", 4, 8), Raw("sub", 8, 9)},
			Key:             []string{"id"},
			ExportAuxiliary: "AlphaMain",
		}).
		Add(ClassDef{
			Label: "AlphaMain", Parent: "Alpha", Activation: "M",
			Fields: []Field{TrimRight("name", 9, 19)},
		}).
		Build()
	require.NoError(t, err)

	alpha := tree.Find("Alpha")
	main := tree.Find("AlphaMain")

	assert.Equal(t, main.Fields(), alpha.FieldsForExport())
	// The auxiliary itself exports its own table.
	assert.Equal(t, main.Fields(), main.FieldsForExport())
	// Without an export auxiliary, a class exports its own table.
	assert.NotEqual(t, alpha.Fields(), alpha.FieldsForExport())
}
