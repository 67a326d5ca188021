//go:build unit || e2e

// Package testutil turns request DTOs into maps so table tests can drop or
// override single JSON fields.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Mutation func(m map[string]any)

// DtoMap round-trips v through JSON and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		if f != nil {
			f(m)
		}
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Fields applies several Field mutations.
func Fields(kv map[string]any) Mutation {
	return func(m map[string]any) {
		for k, v := range kv {
			Field(k, v)(m)
		}
	}
}
