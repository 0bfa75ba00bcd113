package mro_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sghaida/oodesign/mro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shapesYAML = `
bundles:
  - name: Describable
    methods:
      describe: { says: "a %s with %d sides", arity: 2 }
types:
  - name: Square
    parent: Shape
    methods:
      sides: { says: "4" }
  - name: Shape
    includes: [Describable]
    methods:
      sides: { says: "unknown" }
`

func TestLoadSchema_AndRegistry(t *testing.T) {
	t.Parallel()

	s, err := mro.LoadSchema(strings.NewReader(shapesYAML))
	require.NoError(t, err)
	require.Len(t, s.Bundles, 1)
	require.Len(t, s.Types, 2)
	assert.Equal(t, 2, s.Bundles[0].Methods["describe"].Arity)

	reg, err := s.Registry()
	require.NoError(t, err)

	square := reg.MustType("Square")
	out, err := mro.Invoke(square, "sides")
	require.NoError(t, err)
	assert.Equal(t, "4", out)

	out, err = mro.Invoke(square, "describe", "square", 4)
	require.NoError(t, err)
	assert.Equal(t, "a square with 4 sides", out)

	_, err = mro.Invoke(square, "describe", "square")
	var arity mro.InvalidArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, "describe", arity.Method)
}

func TestLoadSchema_Empty(t *testing.T) {
	t.Parallel()

	s, err := mro.LoadSchema(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Types)
	assert.Empty(t, s.Bundles)
}

func TestLoadSchema_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		doc     string
		wantSub string
	}{
		{name: "unknown field", doc: "types:\n  - name: A\n    mixins: [B]\n", wantSub: "decode schema"},
		{name: "malformed", doc: "types: [", wantSub: "decode schema"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := mro.LoadSchema(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestSchemaRegistry_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		check func(t *testing.T, err error)
	}{
		{
			name: "unnamed bundle",
			doc:  "bundles:\n  - methods: { m: { says: x } }\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, mro.ErrEmptyName)
			},
		},
		{
			name: "duplicate bundle",
			doc:  "bundles:\n  - name: B\n  - name: B\n",
			check: func(t *testing.T, err error) {
				var dup mro.DuplicateBundleError
				assert.True(t, errors.As(err, &dup))
			},
		},
		{
			name: "duplicate type",
			doc:  "types:\n  - name: T\n  - name: T\n",
			check: func(t *testing.T, err error) {
				var dup mro.DuplicateTypeError
				assert.True(t, errors.As(err, &dup))
			},
		},
		{
			name: "cycle",
			doc:  "types:\n  - name: A\n    parent: B\n  - name: B\n    parent: A\n",
			check: func(t *testing.T, err error) {
				var cyc mro.CyclicHierarchyError
				require.True(t, errors.As(err, &cyc))
				assert.Equal(t, []string{"A", "B", "A"}, cyc.Chain)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := mro.LoadSchema(strings.NewReader(tc.doc))
			require.NoError(t, err)

			_, err = s.Registry()
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}
