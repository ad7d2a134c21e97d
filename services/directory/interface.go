// Package directory maintains the reference collections: resources, legal
// entries, and users. The three collections share the same CRUD shape and
// carry no business rules beyond identifier uniqueness and a non-empty
// title/name on create and update.
package directory

import (
	"context"

	"safebridge/models"
	"safebridge/store"
)

type DirectoryService interface {
	// Resources
	ListResources(ctx context.Context, query string) ([]models.Resource, error)
	AddResource(ctx context.Context, draft models.Resource) (*models.Resource, error)
	UpdateResource(ctx context.Context, res models.Resource) (*models.Resource, error)
	RemoveResource(ctx context.Context, id string) error

	// Legal entries
	ListLegal(ctx context.Context) ([]models.LegalEntry, error)
	AddLegal(ctx context.Context, draft models.LegalEntry) (*models.LegalEntry, error)
	UpdateLegal(ctx context.Context, entry models.LegalEntry) (*models.LegalEntry, error)
	RemoveLegal(ctx context.Context, id string) error

	// Users
	ListUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, name, role string) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
	RemoveUser(ctx context.Context, id string) error

	Counts(ctx context.Context) (Counts, error)
}

// Counts summarizes directory collection sizes for the admin overview.
type Counts struct {
	Users     int `json:"users"`
	Resources int `json:"resources"`
	Legal     int `json:"legal"`
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Store *store.Store
}
