package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCookie(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStored string
		wantRaw    string
	}{
		{
			name:       "bare value gets canonical prefix",
			input:      "AQEtest123",
			wantStored: "li_at=AQEtest123",
			wantRaw:    "AQEtest123",
		},
		{
			name:       "prefixed value kept as stored form",
			input:      "li_at=AQEtest123",
			wantStored: "li_at=AQEtest123",
			wantRaw:    "AQEtest123",
		},
		{
			name:       "surrounding whitespace trimmed",
			input:      "  li_at=AQEabc  ",
			wantStored: "li_at=AQEabc",
			wantRaw:    "AQEabc",
		},
		{
			name:       "bare value with whitespace",
			input:      "\tAQEabc\n",
			wantStored: "li_at=AQEabc",
			wantRaw:    "AQEabc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCookie(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStored, got.Stored)
			assert.Equal(t, tt.wantRaw, got.Raw)
		})
	}
}

func TestNormalizeCookieDeterministic(t *testing.T) {
	first, err := NormalizeCookie("AQEtest123")
	require.NoError(t, err)
	second, err := NormalizeCookie(first.Stored)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeCookieEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeCookie(input)
		assert.ErrorIs(t, err, ErrEmptyCookie, "input %q", input)
	}
}

func TestRawValue(t *testing.T) {
	assert.Equal(t, "AQEtest123", RawValue("li_at=AQEtest123"))
	assert.Equal(t, "AQEtest123", RawValue("AQEtest123"))
}
