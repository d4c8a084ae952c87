package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveKey(t *testing.T) {
	tests := []struct {
		name     string
		keys     Keys
		key      string
		expected Keys
		removed  bool
	}{
		{
			name:     "removes first occurrence only",
			keys:     Keys{"a", "b", "a"},
			key:      "a",
			expected: Keys{"b", "a"},
			removed:  true,
		},
		{
			name:     "missing key",
			keys:     Keys{"a", "b"},
			key:      "c",
			expected: Keys{"a", "b"},
			removed:  false,
		},
		{
			name:     "last element",
			keys:     Keys{"a"},
			key:      "a",
			expected: Keys{},
			removed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := RemoveKey(tt.keys, tt.key)
			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRemoveKeyAt_DoesNotAliasInput(t *testing.T) {
	keys := Keys{"a", "b", "c"}
	out := RemoveKeyAt(keys, 0)

	assert.Equal(t, Keys{"b", "c"}, out)
	assert.Equal(t, Keys{"a", "b", "c"}, keys)
}

func TestNewPersona_EmptyLists(t *testing.T) {
	p := NewPersona("l2", "1")
	assert.NotNil(t, p.Authorizations)
	assert.NotNil(t, p.Impersonations)
	assert.Empty(t, p.Authorizations)
	assert.Empty(t, p.Impersonations)

	u := NewUser("0xabc", 1)
	assert.NotNil(t, u.Authorizations)
	assert.NotNil(t, u.Impersonations)
	assert.Equal(t, uint64(1), u.Balance)
}
