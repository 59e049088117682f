// Package jsonutil provides helper functions for extracting typed values
// from unstructured JSON maps (map[string]any), such as upstream error bodies.
package jsonutil

// StringFromAny safely converts any value to string.
func StringFromAny(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// StringFromMap extracts a string from a map by key.
func StringFromMap(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		return StringFromAny(v)
	}
	return ""
}
