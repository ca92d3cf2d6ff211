package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.False(t, c.IgnoreCase())
	assert.False(t, c.Regex())
	assert.Equal(t, "", c.Extensions())
	assert.Equal(t, DefaultExcludes, c.Excludes())
	assert.Equal(t, DefaultThreads, c.Threads())
	assert.Equal(t, DefaultMaxLineLength, c.MaxLineLength())
	for _, key := range ValidKeys() {
		assert.False(t, c.IsSet(key), key)
	}
}

func TestExcludes_ReturnsCopy(t *testing.T) {
	var c Config
	ex := c.Excludes()
	ex[0] = "changed"
	assert.NotEqual(t, "changed", DefaultExcludes[0])
}

func TestExclusions(t *testing.T) {
	var c Config
	got := c.Exclusions([]string{"*.gen.go"}, false)
	assert.Equal(t, append(append([]string(nil), DefaultExcludes...), "*.gen.go"), got)

	assert.Equal(t, []string{"*.gen.go"}, c.Exclusions([]string{"*.gen.go"}, true))
	assert.Empty(t, c.Exclusions(nil, true))

	require.NoError(t, c.Set("search.exclude", "docs"))
	assert.Equal(t, []string{"docs", "tmp"}, c.Exclusions([]string{"tmp"}, false))
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"search.ignore_case", "TRUE", "true"},
		{"search.regex", "false", "false"},
		{"search.extensions", " rs,py ", "rs,py"},
		{"search.exclude", "node_modules, dist ,,*.min.js", "node_modules,dist,*.min.js"},
		{"search.exclude", "", ""},
		{"search.threads", "8", "8"},
		{"limits.max_line_length", "4096", "4096"},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			var c Config
			require.NoError(t, c.Set(tc.key, tc.value))
			got, err := c.Get(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, c.IsSet(tc.key))
		})
	}
}

func TestSet_EmptyExcludeDisablesDefaults(t *testing.T) {
	var c Config
	require.NoError(t, c.Set("search.exclude", ""))
	assert.Empty(t, c.Excludes())
	assert.NotNil(t, c.Excludes())

	require.NoError(t, c.Unset("search.exclude"))
	assert.Equal(t, DefaultExcludes, c.Excludes())
}

func TestSet_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
		err        error
	}{
		{"search.ignore_case", "yes", ErrInvalidValue},
		{"search.threads", "0", ErrInvalidValue},
		{"search.threads", "1000", ErrInvalidValue},
		{"search.threads", "many", ErrInvalidValue},
		{"limits.max_line_length", "-1", ErrInvalidValue},
		{"search.exclude", "[abc", ErrInvalidValue},
		{"author.name", "x", ErrUnknownKey},
	}
	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			var c Config
			assert.ErrorIs(t, c.Set(tc.key, tc.value), tc.err)
		})
	}

	var c Config
	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorIs(t, c.Unset("nope"), ErrUnknownKey)
}

func TestAll(t *testing.T) {
	var c Config
	require.NoError(t, c.Set("search.threads", "4"))
	all := c.All()
	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "4", all["search.threads"])
	assert.Equal(t, "false", all["search.regex"])
}

func TestValidate(t *testing.T) {
	bad := 0
	c := Config{Search: Search{Threads: &bad}}
	assert.ErrorIs(t, c.Validate(), ErrInvalidValue)

	huge := MaxMaxLineLength + 1
	c = Config{Limits: Limits{MaxLineLength: &huge}}
	assert.ErrorIs(t, c.Validate(), ErrInvalidValue)

	patterns := []string{"ok", "[bad"}
	c = Config{Search: Search{Exclude: &patterns}}
	assert.ErrorIs(t, c.Validate(), ErrInvalidValue)

	assert.NoError(t, (&Config{}).Validate())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ffind", "config.yaml")

	c := &Config{path: path, scope: ScopeLocal}
	require.NoError(t, c.Set("search.ignore_case", "true"))
	require.NoError(t, c.Set("search.exclude", ""))
	require.NoError(t, c.Set("search.threads", "3"))
	require.NoError(t, c.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ignore_case: true")
	assert.Contains(t, string(data), "exclude: []")
	assert.NotContains(t, string(data), "limits")

	loaded, err := loadPath(path, ScopeLocal)
	require.NoError(t, err)
	assert.True(t, loaded.IgnoreCase())
	assert.Empty(t, loaded.Excludes())
	assert.Equal(t, 3, loaded.Threads())
	assert.False(t, loaded.IsSet("search.regex"))
	assert.Equal(t, ScopeLocal, loaded.Scope())

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.Contains(t, []string{"config.yaml", "config.yaml.lock"}, e.Name())
	}
}

func TestSave_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			c := &Config{path: path}
			n := i + 1
			c.Search.Threads = &n
			assert.NoError(t, c.Save())
		})
	}
	wg.Wait()

	loaded, err := loadPath(path, ScopeGlobal)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, loaded.Threads(), 1)
	assert.LessOrEqual(t, loaded.Threads(), 8)
}

func TestLoad_Missing(t *testing.T) {
	c, err := loadPath(filepath.Join(t.TempDir(), "none.yaml"), ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, DefaultThreads, c.Threads())
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unterminated"), 0644))

	_, err := loadPath(path, ScopeGlobal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed config file")
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  threads: 0\n"), 0644))

	_, err := loadPath(path, ScopeGlobal)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
