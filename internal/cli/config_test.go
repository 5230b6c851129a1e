package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruboto/rubotogen/internal/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldCwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldCwd) })
}

func TestFindConfigFile_ExplicitPath(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("min_sdk: 10"), 0o644))

	path, err := findConfigFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, tmpFile, path)
}

func TestFindConfigFile_ExplicitPathNotFound(t *testing.T) {
	_, err := findConfigFile("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
}

func TestFindConfigFile_AutoDiscovery(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	configPath := filepath.Join(root, "rubotogen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("min_sdk: 10"), 0o644))

	nested := filepath.Join(root, "src", "org", "ruboto")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	path, err := findConfigFile("")
	require.NoError(t, err)

	// Resolve symlinks for comparison (macOS /var -> /private/var)
	expectedPath, _ := filepath.EvalSymlinks(configPath)
	actualPath, _ := filepath.EvalSymlinks(path)
	assert.Equal(t, expectedPath, actualPath)
}

func TestFindConfigFile_StopsAtGitRoot(t *testing.T) {
	outer := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outer, "rubotogen.yaml"), []byte("min_sdk: 3"), 0o644))

	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	chdir(t, repo)

	path, err := findConfigFile("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLoadConfig_Defaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	chdir(t, root)

	cfg, path, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "api.xml", cfg.API)
	assert.Equal(t, ".", cfg.Destination)
	assert.Equal(t, "all", cfg.Generate.MethodBase)
	assert.False(t, cfg.Generate.Force)
	assert.Zero(t, cfg.MinSDK)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rubotogen.yaml")
	content := `package: org.example
min_sdk: 10
target_sdk: 19
api: platform/api.xml
generate:
  method_base: "on"
  force: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	t.Setenv("RUBOTOGEN_TARGET_SDK", "21")
	t.Setenv("RUBOTOGEN_GENERATE_METHOD_BASE", "abstract")

	cfg, path, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, configPath, path)
	assert.Equal(t, "org.example", cfg.Package)
	assert.Equal(t, 10, cfg.MinSDK)
	assert.Equal(t, 21, cfg.TargetSDK, "environment overrides the file")
	assert.Equal(t, "platform/api.xml", cfg.API)
	assert.Equal(t, "abstract", cfg.Generate.MethodBase)
	assert.True(t, cfg.Generate.Force)
}

func TestLoadConfig_InvalidRange(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rubotogen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("min_sdk: 19\ntarget_sdk: 10\n"), 0o644))

	_, _, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ConfigurationErrorCode))
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "rubotogen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("min_sdk: [unterminated"), 0o644))

	_, _, err := LoadConfig(configPath)
	require.Error(t, err)
	assert.Equal(t, ExitConfig, ExitCode(err))
}

func TestResolveHelpers(t *testing.T) {
	assert.Equal(t, "flag", ResolveString("", "flag", "config"))
	assert.Equal(t, "", ResolveString("", ""))
	assert.Equal(t, 19, ResolveInt(0, 19, 10))
	assert.Equal(t, 0, ResolveInt(0, -1))
	assert.True(t, ResolveBool(false, true))
	assert.False(t, ResolveBool())
}
