package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smallbiznis/console/internal/invitation/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	items      []domain.Invitation
	err        error
	calls      int
	lastUserID string
	lastStatus domain.InvitationStatus
}

func (f *fakeRepository) ListByRecipient(ctx context.Context, recipientID string, status domain.InvitationStatus) ([]domain.Invitation, error) {
	_ = ctx
	f.calls++
	f.lastUserID = recipientID
	f.lastStatus = status
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestListPendingOrdersByCreatedAtThenID(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &fakeRepository{items: []domain.Invitation{
		{ID: "inv_c", CreatedAt: base.Add(time.Hour)},
		{ID: "inv_b", CreatedAt: base},
		{ID: "inv_a", CreatedAt: base},
	}}
	svc := NewService(Params{Repo: repo})

	items, err := svc.ListPending(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"inv_a", "inv_b", "inv_c"}, ids(items))
	assert.Equal(t, "u1", repo.lastUserID)
	assert.Equal(t, domain.StatusPending, repo.lastStatus)
}

func TestListPendingNeverReturnsNil(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Params{Repo: repo})

	items, err := svc.ListPending(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListPendingBlankUser(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(Params{Repo: repo})

	items, err := svc.ListPending(context.Background(), "  ")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, repo.calls)
}

func TestListPendingWrapsRepositoryError(t *testing.T) {
	cause := errors.New("firestore unavailable")
	svc := NewService(Params{Repo: &fakeRepository{err: cause}})

	items, err := svc.ListPending(context.Background(), "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, items)
}

func ids(items []domain.Invitation) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
