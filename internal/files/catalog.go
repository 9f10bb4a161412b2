// Package files implements the static file-name catalog the FILE_SEARCH
// intent looks up. The catalog is a fixed in-memory list; an optional
// catalog file in JSON, YAML or TOML can replace the built-in samples.
package files

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/jarvis/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// SampleEntries is the built-in catalog used when no catalog file is
// configured.
var SampleEntries = []models.FileEntry{
	{Name: "quarterly_report.pdf", Path: "/documents/work/quarterly_report.pdf", Type: "pdf"},
	{Name: "vacation_photos.zip", Path: "/photos/vacation_photos.zip", Type: "zip"},
	{Name: "project_proposal.docx", Path: "/documents/project_proposal.docx", Type: "docx"},
	{Name: "budget_2023.xlsx", Path: "/documents/finance/budget_2023.xlsx", Type: "xlsx"},
	{Name: "presentation.pptx", Path: "/documents/presentation.pptx", Type: "pptx"},
}

// Catalog is a read-only lookup table of file records.
type Catalog struct {
	entries []models.FileEntry
}

// NewCatalog wraps the given entries, defaulting to SampleEntries.
func NewCatalog(entries []models.FileEntry) *Catalog {
	if len(entries) == 0 {
		entries = SampleEntries
	}
	return &Catalog{entries: entries}
}

// catalogDocument is the on-disk shape of a catalog file.
type catalogDocument struct {
	Files []models.FileEntry `json:"files" yaml:"files" toml:"files"`
}

// Load reads a catalog file. format may be empty, in which case it is
// inferred from the file extension; json, yaml and toml are supported.
func Load(path, format string) (*Catalog, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		if format == "yml" {
			format = formatYAML
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var doc catalogDocument
	switch format {
	case formatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog %s: %w", path, err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog %s: %w", path, err)
		}
	case formatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}

	for i, entry := range doc.Files {
		if err := models.ValidateStruct(entry); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d in %s: %w", i, path, err)
		}
	}

	return NewCatalog(doc.Files), nil
}

// Search returns every entry whose name contains query, case
// insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []models.FileEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []models.FileEntry
	for _, entry := range c.entries {
		if strings.Contains(strings.ToLower(entry.Name), query) {
			results = append(results, entry)
		}
	}
	return results
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }
