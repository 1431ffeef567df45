package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/console/internal/docstore"
	"github.com/smallbiznis/console/internal/invitation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *docstore.SQLStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	store := docstore.NewSQL(conn)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestListByRecipient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Put(ctx, domain.Collection, "inv_1", map[string]any{
		"organizationId":   "org_1",
		"organizationName": "Acme",
		"email":            "u1@example.com",
		"role":             "member",
		"status":           "PENDING",
		"recipientId":      "u1",
		"invitedBy":        "owner_1",
		"createdAt":        createdAt.Format(time.RFC3339Nano),
	}))
	require.NoError(t, store.Put(ctx, domain.Collection, "inv_2", map[string]any{
		"status":      "ACCEPTED",
		"recipientId": "u1",
	}))
	require.NoError(t, store.Put(ctx, domain.Collection, "inv_3", map[string]any{
		"status":      "PENDING",
		"recipientId": "u2",
	}))

	repo := NewRepository(store)
	items, err := repo.ListByRecipient(ctx, "u1", domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, items, 1)

	inv := items[0]
	assert.Equal(t, "inv_1", inv.ID)
	assert.Equal(t, "org_1", inv.OrganizationID)
	assert.Equal(t, "Acme", inv.OrganizationName)
	assert.Equal(t, "u1@example.com", inv.Email)
	assert.Equal(t, "member", inv.Role)
	assert.Equal(t, domain.StatusPending, inv.Status)
	assert.Equal(t, "owner_1", inv.InvitedBy)
	assert.True(t, createdAt.Equal(inv.CreatedAt))
}

func TestListByRecipientEmpty(t *testing.T) {
	repo := NewRepository(newTestStore(t))

	items, err := repo.ListByRecipient(context.Background(), "nobody", domain.StatusPending)
	require.NoError(t, err)
	assert.Empty(t, items)
}
