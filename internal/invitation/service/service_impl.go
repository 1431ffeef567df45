package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/smallbiznis/console/internal/invitation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Repo domain.Repository
	Log  *zap.Logger
}

type Service struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewService(p Params) domain.Service {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: p.Repo,
		log:  log.Named("invitation.service"),
	}
}

func (s *Service) ListPending(ctx context.Context, userID string) ([]domain.Invitation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []domain.Invitation{}, nil
	}

	items, err := s.repo.ListByRecipient(ctx, userID, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending invitations: %w", err)
	}
	if items == nil {
		return []domain.Invitation{}, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	s.log.Debug("pending invitations listed", zap.String("user_id", userID), zap.Int("count", len(items)))
	return items, nil
}
