// Package domain contains the organization read model.
package domain

// Collection is the document collection holding organizations.
const Collection = "organizations"

// UnknownName is returned in place of a display name that cannot be resolved.
const UnknownName = "Unknown"

// Organization represents a tenant document.
type Organization struct {
	ID   string `doc:"-" json:"id"`
	Name string `doc:"name" json:"name"`
}

// OrganizationResponse is the layout payload for an organization.
type OrganizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
