package legislation

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// BundledSource is the Source of the catalog compiled into the binary.
const BundledSource = "bundled"

//go:embed data/legislation.json
var bundledData []byte

// groupedFile is the on-disk layout of the bundled dataset: records grouped by
// jurisdiction type, federal first.
type groupedFile struct {
	LastUpdated   string   `json:"last_updated" yaml:"last_updated"`
	Federal       []Record `json:"federal" yaml:"federal"`
	State         []Record `json:"state" yaml:"state"`
	International []Record `json:"international" yaml:"international"`
}

func (g groupedFile) flatten() []Record {
	out := make([]Record, 0, len(g.Federal)+len(g.State)+len(g.International))
	out = appendGroup(out, g.Federal, Federal)
	out = appendGroup(out, g.State, State)
	out = appendGroup(out, g.International, International)
	return out
}

// appendGroup fills in the jurisdiction type from the group key when a
// record omits it.
func appendGroup(dst, group []Record, t JurisdictionType) []Record {
	for _, r := range group {
		if r.JurisdictionType == "" {
			r.JurisdictionType = t
		}
		dst = append(dst, r)
	}
	return dst
}

// Bundled decodes the dataset compiled into the binary.
func Bundled() (*Catalog, error) {
	records, updated, err := decodeJSON(bundledData)
	if err != nil {
		return nil, fmt.Errorf("decode bundled dataset: %w", err)
	}
	return NewCatalog(records, updated, BundledSource), nil
}

// Load reads an external dataset. A file path is decoded directly; a
// directory contributes every JSON or YAML file it contains.
func Load(ctx context.Context, path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path)
	}
	return LoadFile(path)
}

// LoadFile decodes one dataset file. Both the grouped layout and a flat list
// of records are accepted, in JSON or YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	records, updated, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	return NewCatalog(records, updated, path), nil
}

// LoadDir decodes every dataset file in dir. Files are concatenated in
// lexical name order regardless of which finishes decoding first.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isDatasetFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no dataset files in %s", dir)
	}

	parts := make([][]Record, len(files))
	stamps := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}
			records, updated, err := decode(file, data)
			if err != nil {
				return err
			}
			parts[i] = records
			stamps[i] = updated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Record
	for _, p := range parts {
		all = append(all, p...)
	}
	return NewCatalog(all, latest(stamps), dir), nil
}

func decode(path string, data []byte) ([]Record, string, error) {
	var (
		records []Record
		updated string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		records, updated, err = decodeYAML(data)
	default:
		records, updated, err = decodeJSON(data)
	}
	if err != nil {
		return nil, "", fmt.Errorf("parse dataset %s: %w", filepath.Base(path), err)
	}
	return records, updated, nil
}

func decodeJSON(data []byte) ([]Record, string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, "", err
		}
		return records, "", nil
	}
	var g groupedFile
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return nil, "", err
	}
	return g.flatten(), g.LastUpdated, nil
}

func decodeYAML(data []byte) ([]Record, string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, "", err
	}
	if len(doc.Content) == 0 {
		return nil, "", nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, "", err
		}
		return records, "", nil
	}
	var g groupedFile
	if err := root.Decode(&g); err != nil {
		return nil, "", err
	}
	return g.flatten(), g.LastUpdated, nil
}

func isDatasetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// latest picks the greatest ISO date stamp.
func latest(stamps []string) string {
	var out string
	for _, s := range stamps {
		if s > out {
			out = s
		}
	}
	return out
}
