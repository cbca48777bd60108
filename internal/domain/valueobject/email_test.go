package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_NormalizesInput(t *testing.T) {
	email, err := NewEmail("  Maria.Silva@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "maria.silva@example.com", email.String())
	assert.Equal(t, "example.com", email.Domain())
	assert.Equal(t, "maria.silva", email.LocalPart())
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing at sign", "maria.example.com"},
		{"missing tld", "maria@example"},
		{"single letter tld", "maria@example.c"},
		{"too long", strings.Repeat("a", 250) + "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmail(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestEmail_Equal(t *testing.T) {
	a, err := NewEmail("joao@example.com")
	require.NoError(t, err)
	b, err := NewEmail("JOAO@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, Email{}.IsZero())
}
