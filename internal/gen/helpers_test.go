package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vkenum-generator/internal/registry"
)

// loadRegistry parses and merges docs with the default options.
func loadRegistry(t *testing.T, docs ...string) *registry.Registry {
	t.Helper()

	parsed := make([]*registry.Document, 0, len(docs))

	for _, d := range docs {
		doc, err := registry.Parse([]byte(d))
		require.NoError(t, err)

		parsed = append(parsed, doc)
	}

	reg, err := registry.Merge(registry.DefaultMergeOptions(), parsed...)
	require.NoError(t, err)

	return reg
}
