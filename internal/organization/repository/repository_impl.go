package repository

import (
	"context"

	"github.com/smallbiznis/console/internal/docstore"
	"github.com/smallbiznis/console/internal/organization/domain"
)

type repository struct {
	store docstore.Store
}

func NewRepository(store docstore.Store) domain.Repository {
	return &repository{store: store}
}

func (r *repository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	doc, found, err := r.store.Get(ctx, domain.Collection, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var org domain.Organization
	if err := docstore.Decode(doc, &org); err != nil {
		return nil, err
	}
	org.ID = doc.ID
	return &org, nil
}
