package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkenum-generator/internal/registry"
	"vkenum-generator/internal/testutil"
)

func TestParse(t *testing.T) {
	doc, err := registry.Parse([]byte(testutil.RegistryXML))
	require.NoError(t, err)

	require.Len(t, doc.Platforms, 1)
	assert.Equal(t, "VK_USE_PLATFORM_XLIB_KHR", doc.Platforms[0].Protect)

	assert.Len(t, doc.Features, 2)
	assert.Len(t, doc.Extensions, 4)

	var handles []string

	for _, td := range doc.Types {
		if td.Category == registry.CategoryHandle && td.HandleName != "" {
			handles = append(handles, td.HandleName)
		}
	}

	assert.Equal(t, []string{"VkInstance", "VkDevice"}, handles)
}

func TestParse_Malformed(t *testing.T) {
	_, err := registry.Parse([]byte(`<registry><enums name="VkResult">`))
	require.ErrorIs(t, err, registry.ErrMalformed)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vk.xml")
	require.NoError(t, os.WriteFile(path, []byte(testutil.RegistryXML), 0o600))

	doc, err := registry.LoadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Enums)

	_, err = registry.LoadFile(filepath.Join(dir, "missing.xml"))
	require.ErrorIs(t, err, registry.ErrMalformed)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.xml")
	b := filepath.Join(dir, "b.xml")
	require.NoError(t, os.WriteFile(a, []byte(testutil.RegistryXML), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`<registry/>`), 0o600))

	docs, err := registry.LoadFiles([]string{a, b})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = registry.LoadFiles([]string{a, filepath.Join(dir, "nope.xml")})
	require.ErrorIs(t, err, registry.ErrMalformed)
}
