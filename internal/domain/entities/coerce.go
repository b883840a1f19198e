package entities

import (
	"github.com/spf13/cast"
)

func mapField(m map[string]any, key string) map[string]any {
	v, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return v
}

func stringField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch v.(type) {
	case map[string]any, []any:
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func intField(m map[string]any, key string) int {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		// "60.0" and friends
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

func stringsField(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, err := cast.ToStringE(v); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// collect maps every mapping element of m[key] through fn. Non-sequence values
// yield nil; non-mapping elements are skipped.
func collect[T any](m map[string]any, key string, fn func(map[string]any) T) []T {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, v := range raw {
		elem, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, fn(elem))
	}
	return out
}
