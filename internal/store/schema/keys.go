package schema

import "gorm.io/datatypes"

// Keys is an ordered list of foreign keys owned by an entity, stored as a JSON array
type Keys = datatypes.JSONSlice[string]

// NewKeys returns an empty, non-nil key list
func NewKeys() Keys {
	return Keys{}
}

// IndexOfKey returns the position of the first occurrence of key, or -1
func IndexOfKey(keys Keys, key string) int {
	for i := range keys {
		if keys[i] == key {
			return i
		}
	}
	return -1
}

// RemoveKeyAt returns a copy of keys without the element at position i
func RemoveKeyAt(keys Keys, i int) Keys {
	out := make(Keys, 0, len(keys)-1)
	out = append(out, keys[:i]...)
	return append(out, keys[i+1:]...)
}

// RemoveKey removes the first occurrence of key and reports whether it was present
func RemoveKey(keys Keys, key string) (Keys, bool) {
	i := IndexOfKey(keys, key)
	if i < 0 {
		return keys, false
	}
	return RemoveKeyAt(keys, i), true
}
