package domain

import "context"

type Service interface {
	GetName(ctx context.Context, orgID string) (string, error)
	Get(ctx context.Context, orgID string) (*OrganizationResponse, error)
}
