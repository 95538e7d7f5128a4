package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnum string

const (
	testEnumAlpha testEnum = "alpha"
	testEnumBeta  testEnum = "beta"
)

func newTestNormalizer() *Normalizer[testEnum] {
	return NewNormalizer("test mode", map[string]testEnum{
		"alpha": testEnumAlpha,
		"Beta":  testEnumBeta,
	}, testEnumAlpha)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "alpha", testEnumAlpha},
		{"case insensitive", "BETA", testEnumBeta},
		{"with spaces", "  beta  ", testEnumBeta},
		{"invalid input", "invalid", testEnumAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Parse(t *testing.T) {
	n := newTestNormalizer()

	v, err := n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, testEnumAlpha, v)

	v, err = n.Parse(" Beta ")
	require.NoError(t, err)
	assert.Equal(t, testEnumBeta, v)

	_, err = n.Parse("gamma")
	require.Error(t, err)
	assert.Equal(t, `invalid test mode "gamma", valid options: alpha, beta`, err.Error())
}

func TestNormalizer_ValidKeysIsCopy(t *testing.T) {
	n := newTestNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"alpha", "beta"}, n.ValidKeys())
}
