package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gofcat/internal/cachemanager"
	"github.com/zjrosen/gofcat/internal/domain/catalog"
	"github.com/zjrosen/gofcat/internal/log"
	"github.com/zjrosen/gofcat/internal/presentation"
)

// testConfig disables the user overlay and the saved render cache so tests
// never touch the real home or cache directories.
const testConfig = `catalog:
  load_user: false
output:
  format: table
  width: 100
ui:
  markdown_style: notty
  render_cache_ttl: 0
`

// cachedDocConfig is testConfig with the render cache saved to cacheFile.
func cachedDocConfig(cacheFile string) string {
	return strings.Replace(testConfig, "render_cache_ttl: 0\n",
		"render_cache_ttl: 1m\n  render_cache_file: "+cacheFile+"\n", 1)
}

// resetFlags clears flag variables left over from a previous Execute.
func resetFlags() {
	listCategory = ""
	listFormat = ""
	showFormat = ""
	categoriesFormat = ""
	docRaw = false
	configInitForce = false
	debugFlag = false
	catalogService = nil
}

// runCommand executes the root command with a fresh test config and returns combined output.
func runCommand(t *testing.T, configContent string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0o600))

	return runWithConfigPath(t, cfgPath, args...)
}

// runWithConfigPath executes the root command with --config set to cfgPath as given.
func runWithConfigPath(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := Execute()
	return out.String(), err
}

func TestList_AllJSON(t *testing.T) {
	out, err := runCommand(t, testConfig, "catalog:list", "--format", "json")
	require.NoError(t, err)

	var entries []presentation.EntryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 23)
	require.Equal(t, "creational", entries[0].Category)
	require.Equal(t, "behavioral", entries[len(entries)-1].Category)
}

func TestList_ByCategory(t *testing.T) {
	out, err := runCommand(t, testConfig, "list", "--category", "Structural", "--format", "json")
	require.NoError(t, err)

	var entries []presentation.EntryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 7)
	for _, e := range entries {
		require.Equal(t, "structural", e.Category)
	}
}

func TestList_InvalidCategory(t *testing.T) {
	_, err := runCommand(t, testConfig, "list", "--category", "functional")
	require.ErrorIs(t, err, catalog.ErrInvalidCategory)
}

func TestList_InvalidFormat(t *testing.T) {
	_, err := runCommand(t, testConfig, "list", "--format", "xml")
	require.ErrorIs(t, err, presentation.ErrUnknownFormat)
}

func TestList_TableFromConfig(t *testing.T) {
	out, err := runCommand(t, testConfig, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 24, "header plus one row per pattern")
	require.Contains(t, lines[0], "NAME")
}

func TestShow_FindsEachCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
	}{
		{"Singleton", "creational"},
		{"Facade", "structural"},
		{"Observer", "behavioral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, testConfig, "catalog:show", tt.name, "--format", "json")
			require.NoError(t, err)

			var entry presentation.EntryDTO
			require.NoError(t, json.Unmarshal([]byte(out), &entry))
			require.Equal(t, tt.name, entry.Name)
			require.Equal(t, tt.category, entry.Category)
		})
	}
}

func TestShow_NotFound(t *testing.T) {
	_, err := runCommand(t, testConfig, "show", "NoSuchPattern")
	require.ErrorIs(t, err, catalog.ErrNotFound)
	require.Contains(t, err.Error(), "case-sensitive")
}

func TestShow_CaseSensitive(t *testing.T) {
	_, err := runCommand(t, testConfig, "show", "singleton")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestShow_Text(t *testing.T) {
	out, err := runCommand(t, testConfig, "show", "Factory Method", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Factory Method")
	require.Contains(t, out, "Example: Pizza store")
}

func TestCategories_JSON(t *testing.T) {
	out, err := runCommand(t, testConfig, "catalog:categories", "--format", "json")
	require.NoError(t, err)

	var cats []presentation.CategoryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &cats))
	require.Len(t, cats, 3)
	require.Equal(t, "creational", cats[0].Category)
	require.Equal(t, 5, cats[0].Count)
	require.Equal(t, 7, cats[1].Count)
	require.Equal(t, 11, cats[2].Count)
	require.Contains(t, cats[1].Patterns, "Decorator")
}

func TestDoc_Raw(t *testing.T) {
	out, err := runCommand(t, testConfig, "catalog:doc", "Proxy", "--raw")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# Proxy"))
	require.Contains(t, out, "report")
}

func TestDoc_Rendered(t *testing.T) {
	out, err := runCommand(t, testConfig, "doc", "Builder", "Prototype")
	require.NoError(t, err)
	require.Contains(t, out, "house builder")
	require.Contains(t, out, "Prototype")
	require.Contains(t, out, "Document templates", "patterns without a write-up render a generated page")
}

func TestDoc_NotFound(t *testing.T) {
	_, err := runCommand(t, testConfig, "doc", "Nope")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDoc_RenderCacheSurvivesRuns(t *testing.T) {
	dir := t.TempDir()
	cacheFile := filepath.Join(dir, "cache", "render-cache.gob")
	cfgContent := cachedDocConfig(cacheFile)

	firstLog := filepath.Join(dir, "first.log")
	t.Setenv("GOFCAT_LOG", firstLog)
	first, err := runCommand(t, cfgContent, "doc", "Proxy", "--debug")
	require.NoError(t, err)
	require.FileExists(t, cacheFile)

	saved := cachemanager.NewInMemoryCacheManager[string, string]("write-ups", time.Minute, time.Minute)
	require.NoError(t, saved.LoadFile(cacheFile))
	require.Equal(t, 1, saved.ItemCount())

	secondLog := filepath.Join(dir, "second.log")
	t.Setenv("GOFCAT_LOG", secondLog)
	second, err := runCommand(t, cfgContent, "doc", "Proxy", "--debug")
	require.NoError(t, err)
	require.Equal(t, first, second)

	firstLines, err := os.ReadFile(firstLog)
	require.NoError(t, err)
	require.Contains(t, string(firstLines), "rendered write-up")

	secondLines, err := os.ReadFile(secondLog)
	require.NoError(t, err)
	require.Contains(t, string(secondLines), "cache hit")
	require.NotContains(t, string(secondLines), "rendered write-up")
}

func TestDoc_NoCacheFileWhenTTLIsZero(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "render-cache.gob")
	cfgContent := strings.Replace(cachedDocConfig(cacheFile), "render_cache_ttl: 1m", "render_cache_ttl: 0", 1)

	_, err := runCommand(t, cfgContent, "doc", "Proxy")
	require.NoError(t, err)
	require.NoFileExists(t, cacheFile)
}

func TestDoc_CorruptCacheIsIgnored(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "render-cache.gob")
	require.NoError(t, os.WriteFile(cacheFile, []byte("garbage"), 0o600))

	out, err := runCommand(t, cachedDocConfig(cacheFile), "doc", "Proxy")
	require.NoError(t, err)
	require.Contains(t, out, "Proxy")

	saved := cachemanager.NewInMemoryCacheManager[string, string]("write-ups", time.Minute, time.Minute)
	require.NoError(t, saved.LoadFile(cacheFile), "the next save replaces the unreadable file")
}

func TestMalformedConfigRejected(t *testing.T) {
	_, err := runCommand(t, "output: [format: json\n", "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestMissingConfigFileRejected(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "config.yaml")
	_, err := runWithConfigPath(t, missing, "list")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigSet_CreatesMissingConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	out, err := runWithConfigPath(t, path, "config:set", "output.format", "json")
	require.NoError(t, err)
	require.Contains(t, out, "set output.format = json")
	require.FileExists(t, path)
}

func TestConfigInit_WorksWithMalformedConfig(t *testing.T) {
	_, err := runCommand(t, "output: [format: json\n", "config:init", filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
}

func TestDebugLogClosedAfterFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("GOFCAT_LOG", logPath)

	_, err := runCommand(t, testConfig, "show", "NoSuchPattern", "--debug")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	log.Info(log.CatCLI, "written after exit")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "gofcat starting")
	require.NotContains(t, string(content), "written after exit")
	require.Nil(t, logCleanup)
}

func TestInvalidConfigRejected(t *testing.T) {
	_, err := runCommand(t, "output:\n  format: xml\n", "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestConfigSet_WorksWithInvalidConfig(t *testing.T) {
	out, err := runCommand(t, "output:\n  format: xml\n", "config:set", "output.format", "json")
	require.NoError(t, err)
	require.Contains(t, out, "set output.format = json")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gofcat", "config.yaml")

	out, err := runCommand(t, testConfig, "config:init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)
	require.FileExists(t, path)

	_, err = runCommand(t, testConfig, "config:init", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, testConfig, "config:init", path, "--force")
	require.NoError(t, err)
}

func TestUserOverlay(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "catalog", "enterprise")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(`
category: structural
patterns:
  - name: Repository
    summary: Mediate between the domain and data mapping layers.
`), 0o600))

	cfgContent := "catalog:\n  load_user: true\n  user_dir: " + base + "\n"
	out, err := runCommand(t, cfgContent, "show", "Repository", "--format", "json")
	require.NoError(t, err)

	var entry presentation.EntryDTO
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	require.Equal(t, "user", entry.Source)
}
