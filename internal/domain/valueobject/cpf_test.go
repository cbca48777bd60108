package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCPF_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare digits", "52998224725", "52998224725"},
		{"formatted", "529.982.247-25", "52998224725"},
		{"repeated check digits", "111.444.777-35", "11144477735"},
		{"with stray separators", "529 982 247 25", "52998224725"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpf, err := NewCPF(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cpf.String())
		})
	}
}

func TestNewCPF_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "1234567890"},
		{"too long", "123456789012"},
		{"all identical digits", "11111111111"},
		{"first check digit perturbed", "52998224735"},
		{"second check digit perturbed", "52998224724"},
		{"letters only", "abcdefghijk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCPF(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestCPF_Formatted(t *testing.T) {
	cpf, err := NewCPF("52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25", cpf.Formatted())
}

func TestCPF_Equal(t *testing.T) {
	a, err := NewCPF("529.982.247-25")
	require.NoError(t, err)
	b, err := NewCPF("52998224725")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.IsZero())
	assert.True(t, CPF{}.IsZero())
}
