package domain

import "context"

type Service interface {
	// ListPending returns the pending invitations addressed to userID, oldest first.
	// The result is never nil.
	ListPending(ctx context.Context, userID string) ([]Invitation, error)
}
