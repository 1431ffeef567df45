package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/console/internal/organization/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type service struct {
	repo  domain.Repository
	cache domain.NameCache
	log   *zap.Logger
}

type ServiceParam struct {
	fx.In

	Repo  domain.Repository
	Cache domain.NameCache `optional:"true"`
	Log   *zap.Logger
}

func NewService(p ServiceParam) domain.Service {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repo:  p.Repo,
		cache: p.Cache,
		log:   log.Named("organization.service"),
	}
}

// GetName resolves the display name, falling back to domain.UnknownName when the
// organization is missing or unnamed. Only real names are cached.
func (s *service) GetName(ctx context.Context, orgID string) (string, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return domain.UnknownName, nil
	}

	if s.cache != nil {
		name, ok, err := s.cache.GetName(ctx, orgID)
		if err != nil {
			s.log.Warn("organization name cache read failed", zap.String("org_id", orgID), zap.Error(err))
		} else if ok {
			return name, nil
		}
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	if org == nil || strings.TrimSpace(org.Name) == "" {
		return domain.UnknownName, nil
	}

	if s.cache != nil {
		if err := s.cache.SetName(ctx, orgID, org.Name); err != nil {
			s.log.Warn("organization name cache write failed", zap.String("org_id", orgID), zap.Error(err))
		}
	}
	return org.Name, nil
}

func (s *service) Get(ctx context.Context, orgID string) (*domain.OrganizationResponse, error) {
	name, err := s.GetName(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &domain.OrganizationResponse{
		ID:   strings.TrimSpace(orgID),
		Name: name,
	}, nil
}
