package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "RootObject", cfg.RootName)
	assert.Equal(t, StyleStrict, cfg.Naming.Style)
	assert.False(t, cfg.Naming.ParentPrefix)
	assert.True(t, cfg.Arrays.SingularizeNames)
	assert.False(t, cfg.Dev.Debug)
}

func TestLoadConfig(t *testing.T) {
	yaml := `
root_name: ApiResponse
naming:
  style: go
  parent_prefix: true
  field_mappings:
    id: identifier
arrays:
  singularize_names: false
dev:
  debug: true
`
	path := filepath.Join(t.TempDir(), "tsgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ApiResponse", cfg.RootName)
	assert.Equal(t, StyleGo, cfg.Naming.Style)
	assert.True(t, cfg.Naming.ParentPrefix)
	assert.Equal(t, "identifier", cfg.Naming.FieldMappings["id"])
	assert.False(t, cfg.Arrays.SingularizeNames)
	assert.True(t, cfg.Dev.Debug)
}

func TestLoadConfig_UnknownStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsgen.yml")
	require.NoError(t, os.WriteFile(path, []byte("naming:\n  style: shouty\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown naming style")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestFieldName(t *testing.T) {
	cfg := NewConfig()

	// Strict style splits on hyphens only.
	assert.Equal(t, "userName", cfg.FieldName("user-name"))
	assert.Equal(t, "user_name", cfg.FieldName("user_name"))

	cfg.Naming.Style = StyleGo
	assert.Equal(t, "userName", cfg.FieldName("user_name"))

	cfg.Naming.FieldMappings = map[string]string{"user_name": "login"}
	assert.Equal(t, "login", cfg.FieldName("user_name"))
}

func TestInterfaceName(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "GeoPosition", cfg.InterfaceName("geo-position"))
	assert.Equal(t, "Geo_position", cfg.InterfaceName("geo_position"))

	cfg.Naming.Style = StyleGo
	assert.Equal(t, "GeoPosition", cfg.InterfaceName("geo_position"))
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	yaml := "root_name: FromFile\n"
	path := filepath.Join(t.TempDir(), "tsgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	// A CLI value equal to the default does not override the file.
	cfg, err := LoadConfigWithCLI(path, DefaultRootName, false)
	require.NoError(t, err)
	assert.Equal(t, "FromFile", cfg.RootName)

	// An explicit CLI value wins.
	cfg, err = LoadConfigWithCLI(path, "FromCLI", false)
	require.NoError(t, err)
	assert.Equal(t, "FromCLI", cfg.RootName)

	// Debug flag is additive.
	cfg, err = LoadConfigWithCLI(path, "", true)
	require.NoError(t, err)
	assert.True(t, cfg.Dev.Debug)
}

func TestLoadConfigWithCLI_NoFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", "Custom", false)
	require.NoError(t, err)
	assert.Equal(t, "Custom", cfg.RootName)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	configPath := filepath.Join(dir, ".tsgen.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("root_name: X\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	found := FindConfigFile()
	require.NotEmpty(t, found)
	// Resolve symlinks before comparing; macOS temp dirs live behind one.
	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(found))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, ".tsgen.yml", filepath.Base(found))
}
