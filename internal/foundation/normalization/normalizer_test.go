package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode string

const (
	modeFast mode = "fast"
	modeSafe mode = "safe"
)

func newModeNormalizer() *Normalizer[mode] {
	return NewNamedNormalizer("mode", map[string]mode{
		"fast": modeFast,
		"SAFE": modeSafe,
	}, modeSafe)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newModeNormalizer()

	tests := []struct {
		name     string
		input    string
		expected mode
	}{
		{"exact match", "fast", modeFast},
		{"case insensitive", "FAST", modeFast},
		{"with spaces", "  safe  ", modeSafe},
		{"key normalized at construction", "safe", modeSafe},
		{"invalid falls back to default", "turbo", modeSafe},
		{"empty falls back to default", "", modeSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	n := newModeNormalizer()

	got, err := n.NormalizeWithError(" Fast")
	require.NoError(t, err)
	assert.Equal(t, modeFast, got)

	_, err = n.NormalizeWithError("turbo")
	require.EqualError(t, err, `invalid mode "turbo", valid options: [fast safe]`)

	_, err = NewNormalizer(map[string]mode{"fast": modeFast}, modeFast).NormalizeWithError("x")
	require.EqualError(t, err, `invalid value "x", valid options: [fast]`)
}

func TestNormalizer_IsValidAndKeys(t *testing.T) {
	n := newModeNormalizer()
	assert.True(t, n.IsValid("SAFE "))
	assert.False(t, n.IsValid("turbo"))

	keys := n.ValidKeys()
	assert.Equal(t, []string{"fast", "safe"}, keys)
	keys[0] = "mutated"
	assert.Equal(t, []string{"fast", "safe"}, n.ValidKeys())
}
