package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// untouchedSource fails the test if the store asks for a client.
func untouchedSource(t *testing.T) ClientSource {
	return func(ctx context.Context) (*firestore.Client, error) {
		t.Fatal("client must not be requested")
		return nil, nil
	}
}

func TestFirestoreGetGuardsIDs(t *testing.T) {
	store := NewFirestore(untouchedSource(t))

	for _, id := range []string{"", "   ", "org_1/members", "/org_1"} {
		doc, found, err := store.Get(context.Background(), "organizations", id)
		require.NoError(t, err, id)
		assert.False(t, found, id)
		assert.Empty(t, doc.ID, id)
	}
}

func TestFirestoreFindRejectsInvalidField(t *testing.T) {
	store := NewFirestore(untouchedSource(t))

	for _, field := range []string{"", "a.b", "data`) OR 1=1", "1st"} {
		docs, err := store.Find(context.Background(), "invitations", Eq(field, "x"))
		require.ErrorIs(t, err, ErrInvalidField, field)
		assert.Nil(t, docs)
	}
}

func TestFirestorePropagatesSourceError(t *testing.T) {
	boom := errors.New("admin client unavailable")
	store := NewFirestore(func(ctx context.Context) (*firestore.Client, error) { return nil, boom })

	_, _, err := store.Get(context.Background(), "organizations", "org_1")
	assert.ErrorIs(t, err, boom)

	_, err = store.Find(context.Background(), "invitations", Eq("recipientId", "u1"))
	assert.ErrorIs(t, err, boom)
}

// newEmulatorClient connects to a Firestore emulator; the test is skipped without one.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "demo-console")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFirestoreEmulatorGetAndFind(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	organizations := "organizations_" + suffix
	invitations := "invitations_" + suffix

	_, err := client.Collection(organizations).Doc("org_1").Set(ctx, map[string]any{"name": "Acme"})
	require.NoError(t, err)
	for id, data := range map[string]map[string]any{
		"inv_b": {"recipientId": "u1", "status": "PENDING"},
		"inv_a": {"recipientId": "u1", "status": "PENDING"},
		"inv_c": {"recipientId": "u1", "status": "ACCEPTED"},
		"inv_d": {"recipientId": "u2", "status": "PENDING"},
	} {
		_, err := client.Collection(invitations).Doc(id).Set(ctx, data)
		require.NoError(t, err)
	}

	store := NewFirestore(func(ctx context.Context) (*firestore.Client, error) { return client, nil })

	doc, found, err := store.Get(ctx, organizations, "org_1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Acme", doc.Data["name"])

	_, found, err = store.Get(ctx, organizations, "org_missing")
	require.NoError(t, err)
	assert.False(t, found)

	docs, err := store.Find(ctx, invitations, Eq("recipientId", "u1"), Eq("status", "PENDING"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "inv_a", docs[0].ID)
	assert.Equal(t, "inv_b", docs[1].ID)
}
