package domain

import "context"

type Repository interface {
	// FindByID returns nil without error when the organization does not exist.
	FindByID(ctx context.Context, id string) (*Organization, error)
}

// NameCache stores resolved display names. Implementations report misses with ok=false.
type NameCache interface {
	GetName(ctx context.Context, orgID string) (name string, ok bool, err error)
	SetName(ctx context.Context, orgID, name string) error
}
