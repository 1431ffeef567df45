package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSeed = `{
	"organizations": {"org_1": {"name": "Acme"}},
	"invitations": {
		"inv_1": {"recipientId": "u1", "status": "PENDING", "organizationId": "org_1"},
		"inv_2": {"recipientId": "u1", "status": "ACCEPTED"}
	}
}`

func writeSeedFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSeedWritesDocuments(t *testing.T) {
	store := newTestSQLStore(t)
	ctx := context.Background()

	seed, err := LoadSeedFile(writeSeedFile(t, testSeed))
	require.NoError(t, err)

	written, err := Seed(ctx, store, seed)
	require.NoError(t, err)
	assert.Equal(t, 3, written)

	doc, found, err := store.Get(ctx, "organizations", "org_1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Acme", doc.Data["name"])

	docs, err := store.Find(ctx, "invitations", Eq("recipientId", "u1"), Eq("status", "PENDING"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "inv_1", docs[0].ID)
}

func TestLoadSeedFileErrors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = LoadSeedFile(writeSeedFile(t, `{"organizations": [`))
	require.Error(t, err)
}

func TestSeedFromConfig(t *testing.T) {
	ctx := context.Background()
	path := writeSeedFile(t, testSeed)

	t.Run("development", func(t *testing.T) {
		store := newTestSQLStore(t)
		cfg := config.Config{Environment: "development", DocumentStore: config.DocumentStoreConfig{SeedFile: path}}

		require.NoError(t, seedFromConfig(ctx, store, cfg, zap.NewNop()))
		_, found, err := store.Get(ctx, "organizations", "org_1")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("production", func(t *testing.T) {
		store := newTestSQLStore(t)
		cfg := config.Config{Environment: "production", DocumentStore: config.DocumentStoreConfig{SeedFile: path}}

		require.NoError(t, seedFromConfig(ctx, store, cfg, zap.NewNop()))
		_, found, err := store.Get(ctx, "organizations", "org_1")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unset", func(t *testing.T) {
		require.NoError(t, seedFromConfig(ctx, newTestSQLStore(t), config.Config{}, zap.NewNop()))
	})
}
