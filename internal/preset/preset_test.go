package preset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/logging"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logging.NewContext(context.Background(), logging.ForTest(t))
}

func TestBuiltins(t *testing.T) {
	want := []string{Alphanumeric, Any, Digit, English, Letter, MaskableDigit, Russian}
	assert.Equal(t, want, Builtins())
	for _, name := range want {
		assert.True(t, IsBuiltin(name), name)
	}
	assert.False(t, IsBuiltin("phone"))
}

func TestRegistry_BuiltinBehaviour(t *testing.T) {
	tests := []struct {
		set  string
		r    rune
		want bool
	}{
		{Any, '\x00', true},
		{Digit, '7', true},
		{Digit, 'a', false},
		{MaskableDigit, 'X', true},
		{MaskableDigit, '#', false},
		{Letter, 'б', true},
		{Letter, '1', false},
		{English, 'A', true},
		{English, 'б', false},
		{Russian, 'б', true},
		{Russian, 'A', false},
		{Alphanumeric, '7', true},
		{Alphanumeric, 'Ж', true},
		{Alphanumeric, '-', false},
	}
	r := NewRegistry()
	for _, tt := range tests {
		s, err := r.Lookup(tt.set)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.Validate(tt.r), "%s.Validate(%q)", tt.set, tt.r)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	placeholders := "_"
	err := r.Register(testContext(t), "card", []validator.Definition{
		{Kind: validator.KindDigit},
		{Kind: validator.KindMaskedDigit, Placeholders: &placeholders},
		{Kind: validator.KindDigit},
	})
	require.NoError(t, err)

	s, err := r.Lookup("card")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len(), "duplicate digit validators should collapse")
	assert.True(t, s.Validate('_'))
	assert.False(t, s.Validate('X'))

	defs, err := r.Definitions("card")
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	assert.Contains(t, r.Names(), "card")
}

func TestRegistry_RegisterShadowsBuiltin(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testContext(t), Digit, []validator.Definition{{Kind: validator.KindAcceptAll}}))

	s, err := r.Lookup(Digit)
	require.NoError(t, err)
	assert.True(t, s.Validate('a'))

	other, err := NewRegistry().Lookup(Digit)
	require.NoError(t, err)
	assert.False(t, other.Validate('a'), "shadowing must not leak into other registries")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	tests := []struct {
		name string
		set  string
		defs []validator.Definition
	}{
		{"empty name", "", []validator.Definition{{Kind: validator.KindDigit}}},
		{"no validators", "empty", nil},
		{"bad kind", "bad", []validator.Definition{{Kind: "roman"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(testContext(t), tt.set, tt.defs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, validator.ErrInvalidConfiguration))
			_, lookupErr := r.Lookup(tt.set)
			assert.Error(t, lookupErr)
		})
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("phone")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSet))
	assert.Contains(t, errors.FlattenHints(err), "slotcheck sets list")

	_, err = NewRegistry().Definitions("phone")
	assert.True(t, errors.Is(err, ErrUnknownSet))
}
