package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/slotcheck/internal/errors"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestDefinition_Build(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want Validator
	}{
		{"accept all", Definition{Kind: KindAcceptAll}, NewAcceptAll()},
		{"digit", Definition{Kind: KindDigit}, NewDigit()},
		{"masked default", Definition{Kind: KindMaskedDigit}, NewMaskedDigit()},
		{"masked custom", Definition{Kind: KindMaskedDigit, Placeholders: strPtr("_#")}, NewMaskedDigit('_', '#')},
		{"masked empty", Definition{Kind: KindMaskedDigit, Placeholders: strPtr("")}, MaskedDigit{}},
		{"letter default", Definition{Kind: KindLetter}, NewLetter()},
		{"letter english", Definition{Kind: KindLetter, Russian: boolPtr(false)}, NewLetter(WithRussian(false))},
		{
			"letter explicit",
			Definition{Kind: KindLetter, English: boolPtr(false), Russian: boolPtr(true)},
			NewLetter(WithEnglish(false)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.def.Build()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "Build() = %s, want %s", got, tt.want)
		})
	}
}

func TestDefinition_BuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantMsg string
	}{
		{"missing kind", Definition{}, "validator kind is required"},
		{"unknown kind", Definition{Kind: "hex"}, `unknown validator kind "hex"`},
		{"digit with placeholders", Definition{Kind: KindDigit, Placeholders: strPtr("X")}, `option "placeholders" does not apply to digit validators`},
		{"accept all with english", Definition{Kind: KindAcceptAll, English: boolPtr(true)}, `option "english" does not apply to accept_all validators`},
		{"masked with russian", Definition{Kind: KindMaskedDigit, Russian: boolPtr(true)}, `option "russian" does not apply to masked_digit validators`},
		{"letter with placeholders", Definition{Kind: KindLetter, Placeholders: strPtr("*")}, `option "placeholders" does not apply to letter validators`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestDefinition_UnknownKindHint(t *testing.T) {
	_, err := Definition{Kind: "hex"}.Build()
	require.Error(t, err)
	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "masked_digit")
}

func TestBuildSet(t *testing.T) {
	s, err := BuildSet([]Definition{
		{Kind: KindDigit},
		{Kind: KindMaskedDigit},
		{Kind: KindMaskedDigit, Placeholders: strPtr("Xx*")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	_, err = BuildSet([]Definition{{Kind: KindDigit}, {Kind: "nope"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "validator 1")
}

func TestDescribe_RoundTrip(t *testing.T) {
	vs := []Validator{
		NewAcceptAll(),
		NewDigit(),
		NewMaskedDigit(),
		NewMaskedDigit('_'),
		MaskedDigit{},
		NewLetter(),
		NewLetter(WithEnglish(false), WithRussian(false)),
	}
	for _, v := range vs {
		t.Run(v.String(), func(t *testing.T) {
			def, ok := Describe(v)
			require.True(t, ok)
			got, err := def.Build()
			require.NoError(t, err)
			assert.True(t, v.Equal(got), "round trip of %s produced %s", v, got)
		})
	}
}

func TestDescribe_Foreign(t *testing.T) {
	_, ok := Describe(collidingValidator{1})
	assert.False(t, ok)

	_, err := DescribeSet(NewSet(NewDigit(), collidingValidator{1}))
	assert.Error(t, err)
}

func TestDescribeSet(t *testing.T) {
	defs, err := DescribeSet(NewSet(NewDigit(), NewLetter(WithRussian(false))))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, KindDigit, defs[0].Kind)
	assert.Equal(t, KindLetter, defs[1].Kind)
	require.NotNil(t, defs[1].Russian)
	assert.False(t, *defs[1].Russian)
}
