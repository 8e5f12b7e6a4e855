package template

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewStore_SeedsDefaults(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir, testLogger())
	require.NoError(t, err)

	// First start writes the catalog file.
	data, err := os.ReadFile(filepath.Join(dir, "templates.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mechanics_incline")

	all := store.All()
	require.Len(t, all, 7)

	ids := make([]string, 0, len(all))
	for _, tpl := range all {
		ids = append(ids, tpl.ID)
	}
	assert.ElementsMatch(t, []string{
		"mechanics_incline",
		"mechanics_pendulum",
		"electricity_circuit",
		"electricity_parallel",
		"optics_lens",
		"thermodynamics_pv",
		"quantum_energy",
	}, ids)
}

func TestNewStore_KeepsExistingCatalog(t *testing.T) {
	dir := t.TempDir()

	catalog := `[
  {
    "id": "custom_spring",
    "name": "Mass on Spring",
    "description": "A mass oscillating on a spring",
    "diagram_type": "mechanics",
    "tikz_code": "\\begin{tikzpicture}\\draw (0,0) -- (1,1);\\end{tikzpicture}"
  }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates.json"), []byte(catalog), 0o644))

	store, err := NewStore(dir, testLogger())
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "custom_spring", all[0].ID)
	assert.Equal(t, "Mass on Spring", all[0].Name)
}

func TestNewStore_RejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
	}{
		{
			name:    "malformed json",
			catalog: `[{"id": "broken"`,
		},
		{
			name: "unknown diagram type",
			catalog: `[{"id": "t1", "name": "T1", "description": "", "diagram_type": "astrophysics", "tikz_code": "x"}]`,
		},
		{
			name: "missing tikz code",
			catalog: `[{"id": "t1", "name": "T1", "description": "", "diagram_type": "mechanics"}]`,
		},
		{
			name: "empty id",
			catalog: `[{"id": "", "name": "T1", "description": "", "diagram_type": "mechanics", "tikz_code": "x"}]`,
		},
		{
			name: "unexpected field",
			catalog: `[{"id": "t1", "name": "T1", "description": "", "diagram_type": "mechanics", "tikz_code": "x", "latex_code": "y"}]`,
		},
		{
			name:    "object instead of array",
			catalog: `{"id": "t1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "templates.json"), []byte(tt.catalog), 0o644))

			store, err := NewStore(dir, testLogger())
			require.Error(t, err)
			assert.Nil(t, store)
		})
	}
}

func TestNewStore_RejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()

	catalog := `[
  {"id": "t1", "name": "First", "description": "", "diagram_type": "optics", "tikz_code": "a"},
  {"id": "t1", "name": "Second", "description": "", "diagram_type": "optics", "tikz_code": "b"}
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "templates.json"), []byte(catalog), 0o644))

	store, err := NewStore(dir, testLogger())
	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "duplicate template id")
}

func TestStore_ByCategory(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	tests := []struct {
		category string
		count    int
	}{
		{category: "mechanics", count: 2},
		{category: "electricity", count: 2},
		{category: "optics", count: 1},
		{category: "thermodynamics", count: 1},
		{category: "quantum", count: 1},
		{category: "general", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := store.ByCategory(tt.category)
			assert.Len(t, got, tt.count)
			for _, tpl := range got {
				assert.Equal(t, tt.category, tpl.DiagramType)
			}
		})
	}
}

func TestStore_ByID(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	tpl, err := store.ByID("electricity_circuit")
	require.NoError(t, err)
	assert.Equal(t, "Series Circuit", tpl.Name)
	assert.Equal(t, "electricity", tpl.DiagramType)
	assert.Contains(t, tpl.TikZCode, `\begin{tikzpicture}`)

	_, err = store.ByID("no_such_template")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestStore_Code(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	code, ok := store.Code("mechanics_pendulum")
	require.True(t, ok)
	assert.Contains(t, code, "% Pivot point")

	_, ok = store.Code("no_such_template")
	assert.False(t, ok)
}

func TestStore_All_ReturnsCopy(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLogger())
	require.NoError(t, err)

	all := store.All()
	all[0].Name = "mutated"

	fresh := store.All()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}