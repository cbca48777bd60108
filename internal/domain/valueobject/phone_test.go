package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone_Valid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		mobile bool
		area   string
	}{
		{"mobile bare digits", "11987654321", true, "11"},
		{"mobile formatted", "(11) 98765-4321", true, "11"},
		{"landline", "1133334444", false, "11"},
		{"landline formatted", "(85) 3333-4444", false, "85"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.mobile, phone.IsMobile())
			assert.Equal(t, tt.area, phone.AreaCode())
		})
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "119876543"},
		{"too long", "119876543210"},
		{"unknown area code", "20987654321"},
		{"eleven digits without mobile marker", "11887654321"},
		{"eleven digits with marker displaced", "1187654321" + "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestPhone_Formatted(t *testing.T) {
	mobile, err := NewPhone("11987654321")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321", mobile.Formatted())

	landline, err := NewPhone("1133334444")
	require.NoError(t, err)
	assert.Equal(t, "(11) 3333-4444", landline.Formatted())
}

func TestPhone_WhatsAppLink(t *testing.T) {
	phone, err := NewPhone("(21) 99876-5432")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/5521998765432", phone.WhatsAppLink())
}

func TestPhone_Equal(t *testing.T) {
	a, err := NewPhone("(11) 98765-4321")
	require.NoError(t, err)
	b, err := NewPhone("11987654321")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, Phone{}.IsZero())
}
