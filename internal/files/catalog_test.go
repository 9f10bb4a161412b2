package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_SampleCatalog(t *testing.T) {
	c := NewCatalog(nil)

	results := c.Search("budget")
	require.Len(t, results, 1)
	assert.Equal(t, "budget_2023.xlsx", results[0].Name)

	// Case-insensitive substring containment.
	results = c.Search("BUDGET")
	require.Len(t, results, 1)

	assert.Empty(t, c.Search("nonexistent"))
	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("   "))
}

func TestSearch_MultipleMatches(t *testing.T) {
	c := NewCatalog(nil)

	// "p" hits several sample entries; order follows the catalog.
	results := c.Search("port")
	require.Len(t, results, 1)
	assert.Equal(t, "quarterly_report.pdf", results[0].Name)
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "catalog.json", `{"files":[{"name":"notes.txt","path":"/tmp/notes.txt","type":"txt"}]}`},
		{"yaml", "catalog.yaml", "files:\n  - name: notes.txt\n    path: /tmp/notes.txt\n    type: txt\n"},
		{"toml", "catalog.toml", "[[files]]\nname = \"notes.txt\"\npath = \"/tmp/notes.txt\"\ntype = \"txt\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			c, err := Load(path, "")
			require.NoError(t, err)
			assert.Equal(t, 1, c.Len())
			assert.Len(t, c.Search("notes"), 1)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"), "")
	assert.Error(t, err)

	bad := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad, "")
	assert.Error(t, err)

	incomplete := filepath.Join(dir, "incomplete.json")
	require.NoError(t, os.WriteFile(incomplete, []byte(`{"files":[{"name":"x"}]}`), 0o644))
	_, err = Load(incomplete, "")
	assert.Error(t, err, "entries missing required fields must be rejected")
}
