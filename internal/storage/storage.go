// Package storage persists every collection as a JSON document on disk,
// one file per entity type plus per-event segment and match files keyed by
// the event slug. Reads and writes are whole-file: load the collection,
// mutate in memory, save the collection. Pipe-joined list fields and
// string-encoded counters are a persistence concern only; domain structs
// carry native types.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify lowercases a name, strips non-word characters and collapses
// whitespace and hyphen runs into single hyphens. Event file names are keyed
// by this form.
func Slugify(value string) string {
	value = slugStrip.ReplaceAllString(value, "")
	value = strings.TrimSpace(strings.ToLower(value))
	return slugCollapse.ReplaceAllString(value, "-")
}

// loadCollection reads a whole JSON collection file. A missing or empty file
// is an empty collection, not an error.
func loadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return items, nil
}

// saveCollection writes a whole JSON collection file, creating parent
// directories as needed.
func saveCollection[T any](path string, items []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// joinPipe flattens a list field to the legacy pipe-separated string form.
func joinPipe(items []string) string {
	return strings.Join(items, "|")
}

// splitPipe restores a list field from its stored form, tolerating both a
// pipe-joined string and an already-split JSON array.
func splitPipe(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, "|") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// atoiLoose parses legacy string-encoded counters, treating anything
// unparsable as zero.
func atoiLoose(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
