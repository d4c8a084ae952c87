package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventID(t *testing.T) {
	assert.Equal(t, "0xabcdef:0x0", EventID("0xABCDEF", 0))
	assert.Equal(t, "0xabcdef:0x1a", EventID("0xabcdef", 26))
	assert.NotEqual(t, EventID("0xabcdef", 1), EventID("0xabcdef", 2))
}

func TestImpersonationID(t *testing.T) {
	assert.Equal(t, "7:0xuser:0xconsumer", ImpersonationID("7", "0xuser", "0xconsumer"))
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "checksum address",
			input:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			expected: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		},
		{
			name:     "already lower case",
			input:    "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		},
		{
			name:     "not an address",
			input:    "FOO",
			expected: "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.input))
		})
	}
}

func TestIsZeroAddress(t *testing.T) {
	assert.True(t, IsZeroAddress(ETHEREUM_ZERO_ADDRESS))
	assert.True(t, IsZeroAddress(""))
	assert.True(t, IsZeroAddress("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsZeroAddress("0x0000000000000000000000000000000000000001"))
}

func TestParseLayer(t *testing.T) {
	l, err := ParseLayer("l2")
	require.NoError(t, err)
	assert.Equal(t, LayerL2, l)

	_, err = ParseLayer("l3")
	assert.Error(t, err)
}
