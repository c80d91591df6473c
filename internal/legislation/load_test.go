package legislation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledDataset(t *testing.T) {
	cat, err := Bundled()
	require.NoError(t, err)

	assert.Equal(t, BundledSource, cat.Source())
	assert.Equal(t, "2024-12-24", cat.LastUpdated())
	assert.Equal(t, 28, cat.Len())
	assert.Len(t, cat.OfType(Federal), 8)
	assert.Len(t, cat.OfType(State), 10)
	assert.Len(t, cat.OfType(International), 10)

	records := cat.Records()
	assert.Equal(t, "fed-001", records[0].ID)
	assert.Equal(t, "state-001", records[8].ID)
	assert.Equal(t, "intl-010", records[len(records)-1].ID)

	require.NoError(t, Validate(records))
}

func TestCatalogRecordsReturnsCopy(t *testing.T) {
	cat := NewCatalog([]Record{{ID: "a"}, {ID: "b"}}, "", "test")
	got := cat.Records()
	got[0].ID = "mutated"
	assert.Equal(t, "a", cat.Records()[0].ID)

	r, ok := cat.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "b", r.ID)
	_, ok = cat.Lookup("missing")
	assert.False(t, ok)
}

func TestLoadFileFlatJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.json")
	writeFile(t, path, `[
  {"id": "x-1", "title": "One", "status": "pending", "jurisdiction_type": "state", "state": "Ohio"}
]`)

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, "Ohio", cat.Records()[0].JurisdictionLabel())
	assert.Equal(t, path, cat.Source())
}

func TestLoadFileGroupedYAMLFillsType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	writeFile(t, path, `
last_updated: "2025-02-01"
federal:
  - id: fed-100
    title: Federal thing
    status: active
international:
  - id: intl-100
    name: Treaty
    jurisdiction: Council of Europe
    status: adopted
    tags: [treaty, binding]
`)

	cat, err := LoadFile(path)
	require.NoError(t, err)
	records := cat.Records()
	require.Len(t, records, 2)
	assert.Equal(t, Federal, records[0].JurisdictionType)
	assert.Equal(t, International, records[1].JurisdictionType)
	assert.Equal(t, "Treaty", records[1].DisplayTitle())
	assert.Equal(t, []string{"treaty", "binding"}, records[1].Tags)
	assert.Equal(t, "2025-02-01", cat.LastUpdated())
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	writeFile(t, path, `{"federal": [`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dataset broken.json")
}

func TestLoadDirOrdersByFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yml"), `- {id: b-1, title: B, status: active, jurisdiction_type: state}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{"last_updated": "2024-01-01", "state": [{"id": "a-1", "title": "A", "status": "enacted"}]}`)
	writeFile(t, filepath.Join(dir, "c.json"), `{"last_updated": "2024-06-01", "federal": [{"id": "c-1", "title": "C", "status": "active"}]}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `ignored`)

	cat, err := Load(context.Background(), dir)
	require.NoError(t, err)

	var ids []string
	for _, r := range cat.Records() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a-1", "b-1", "c-1"}, ids)
	assert.Equal(t, "2024-06-01", cat.LastUpdated())
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(context.Background(), t.TempDir())
	require.Error(t, err)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
