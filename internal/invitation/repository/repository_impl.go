package repository

import (
	"context"

	"github.com/smallbiznis/console/internal/docstore"
	"github.com/smallbiznis/console/internal/invitation/domain"
)

type repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) domain.Repository {
	return &repository{store: store}
}

func (r *repository) ListByRecipient(ctx context.Context, recipientID string, status domain.InvitationStatus) ([]domain.Invitation, error) {
	docs, err := r.store.Find(ctx, domain.Collection,
		docstore.Eq("recipientId", recipientID),
		docstore.Eq("status", string(status)),
	)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Invitation, 0, len(docs))
	for _, doc := range docs {
		var inv domain.Invitation
		if err := docstore.Decode(doc, &inv); err != nil {
			return nil, err
		}
		inv.ID = doc.ID
		items = append(items, inv)
	}
	return items, nil
}
