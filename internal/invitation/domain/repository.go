package domain

import "context"

type Repository interface {
	ListByRecipient(ctx context.Context, recipientID string, status InvitationStatus) ([]Invitation, error)
}
