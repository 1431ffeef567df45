package domain

import "time"

// Collection is the document collection holding invitations.
const Collection = "invitations"

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "PENDING"
	StatusAccepted InvitationStatus = "ACCEPTED"
	StatusRevoked  InvitationStatus = "REVOKED"
)

// Invitation is a pending membership offer addressed to a user.
type Invitation struct {
	ID               string           `doc:"-" json:"id"`
	OrganizationID   string           `doc:"organizationId" json:"organizationId"`
	OrganizationName string           `doc:"organizationName" json:"organizationName"`
	Email            string           `doc:"email" json:"email"`
	Role             string           `doc:"role" json:"role"`
	Status           InvitationStatus `doc:"status" json:"status"`
	RecipientID      string           `doc:"recipientId" json:"recipientId"`
	InvitedBy        string           `doc:"invitedBy" json:"invitedBy,omitempty"`
	CreatedAt        time.Time        `doc:"createdAt" json:"createdAt"`
}
