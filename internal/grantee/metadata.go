// Package grantee resolves transactions into unique grantee
// organizations and derives their classification: category,
// international flag and beloved flag, merging a static metadata table
// with heuristic fallbacks.
package grantee

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// NoEIN substitutes for an empty EIN in metadata keys.
const NoEIN = "(no EIN)"

// DefaultCategory is reported for grantees absent from the metadata
// table.
const DefaultCategory = "Uncategorized"

type (
	// MetadataEntry is one row of the static grantee metadata table.
	// The table is authoritative for IsBeloved (no fallback) and for
	// International only when explicitly true; a missing or false
	// entry falls back to the keyword heuristic.
	MetadataEntry struct {
		Name          string `toml:"name"`
		EIN           string `toml:"ein"`
		Category      string `toml:"category"`
		Notes         string `toml:"notes"`
		International bool   `toml:"international"`
		IsBeloved     bool   `toml:"is_beloved"`
	}

	// MetadataTable is the lookup keyed by "name|ein".
	MetadataTable struct {
		entries map[string]MetadataEntry
	}

	// metadataFile is the on-disk TOML shape: the entry list plus
	// optional classifier keyword overrides.
	metadataFile struct {
		Grantees   []MetadataEntry `toml:"grantee"`
		Classifier Keywords        `toml:"classifier"`
	}
)

// MetadataKey builds the composite lookup key, substituting "(no EIN)"
// for an empty EIN.
func MetadataKey(name, ein string) string {
	name = strings.TrimSpace(name)
	ein = strings.TrimSpace(ein)
	if ein == "" {
		ein = NoEIN
	}
	return name + "|" + ein
}

// NewMetadataTable builds a table from entries. Later duplicates of a
// key overwrite earlier ones.
func NewMetadataTable(entries []MetadataEntry) *MetadataTable {
	t := &MetadataTable{entries: make(map[string]MetadataEntry, len(entries))}
	for _, e := range entries {
		t.entries[MetadataKey(e.Name, e.EIN)] = e
	}
	return t
}

// Lookup returns the metadata entry for a grantee identity.
func (t *MetadataTable) Lookup(name, ein string) (MetadataEntry, bool) {
	if t == nil {
		return MetadataEntry{}, false
	}
	e, ok := t.entries[MetadataKey(name, ein)]
	return e, ok
}

// Category returns the grantee's category, falling back to
// "Uncategorized" when the table has no entry or an empty category.
func (t *MetadataTable) Category(name, ein string) string {
	if e, ok := t.Lookup(name, ein); ok && strings.TrimSpace(e.Category) != "" {
		return e.Category
	}
	return DefaultCategory
}

func (t *MetadataTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// LoadMetadata reads the metadata table and optional classifier
// keyword overrides from a TOML file. Empty override lists keep the
// built-in defaults.
func LoadMetadata(path string) (*MetadataTable, Keywords, error) {
	kw := DefaultKeywords()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kw, fmt.Errorf("read metadata file: %w", err)
	}
	var f metadataFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, kw, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	if len(f.Classifier.InternationalOrgs) > 0 {
		kw.InternationalOrgs = f.Classifier.InternationalOrgs
	}
	if len(f.Classifier.AddressKeywords) > 0 {
		kw.AddressKeywords = f.Classifier.AddressKeywords
	}
	if len(f.Classifier.PurposeKeywords) > 0 {
		kw.PurposeKeywords = f.Classifier.PurposeKeywords
	}
	return NewMetadataTable(f.Grantees), kw, nil
}
