package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	assert.Len(t, s.Products, 13)
	assert.Len(t, s.Categories, 4)
	assert.Len(t, s.Tasks, 4)

	ids := make(map[string]bool)
	for _, c := range s.Categories {
		ids[c.ID] = true
		assert.NotEqual(t, "all", c.ID, "the sentinel category is never persisted")
	}
	for _, p := range s.Products {
		if p.CategoryID != nil {
			assert.True(t, ids[*p.CategoryID], "product %s references unknown category", p.ID)
		}
		assert.False(t, p.CreatedAt.IsZero(), "product %s", p.ID)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks":[{"id":"a","title":"t","priority":"low","status":"pending"}]}`), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, "a", s.Tasks[0].ID)
	assert.Empty(t, s.Products)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Parse([]byte("{"))
	assert.Error(t, err)
}
