package directory

import (
	"context"
	"strings"

	"safebridge/models"
	"safebridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListResources returns resources newest-first, optionally filtered by a
// case-insensitive substring match over type, title, contact, region and
// notes (the directory search box semantics).
func (s *DefaultDirectoryService) ListResources(ctx context.Context, query string) ([]models.Resource, error) {
	snap := s.Store.Snapshot()
	if query == "" {
		return snap.Resources, nil
	}
	q := strings.ToLower(query)
	out := []models.Resource{}
	for _, r := range snap.Resources {
		haystack := strings.ToLower(strings.Join([]string{r.Type, r.Title, r.Contact, r.Region, r.Notes}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

// AddResource assigns a fresh id and prepends the resource to the
// collection.
func (s *DefaultDirectoryService) AddResource(ctx context.Context, draft models.Resource) (*models.Resource, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, utils.NewValidationError("title", "a resource requires a title")
	}

	draft.ID = uuid.New().String()
	snap, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Resources = append([]models.Resource{draft}, snap.Resources...)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Resource added",
		zap.String("id", draft.ID), zap.String("type", draft.Type), zap.Int("total", len(snap.Resources)))
	return &draft, nil
}

// UpdateResource replaces the stored resource with the same id. Not part of
// the original surface; provided for library completeness with the same
// validation contract as AddResource.
func (s *DefaultDirectoryService) UpdateResource(ctx context.Context, res models.Resource) (*models.Resource, error) {
	if strings.TrimSpace(res.Title) == "" {
		return nil, utils.NewValidationError("title", "a resource requires a title")
	}

	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		for i, r := range snap.Resources {
			if r.ID == res.ID {
				snap.Resources[i] = res
				return snap, nil
			}
		}
		return models.Snapshot{}, utils.NewNotFoundError("resource", res.ID)
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// RemoveResource deletes the resource with the given id. Removing an
// unknown id is a no-op.
func (s *DefaultDirectoryService) RemoveResource(ctx context.Context, id string) error {
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		out := snap.Resources[:0]
		for _, r := range snap.Resources {
			if r.ID != id {
				out = append(out, r)
			}
		}
		snap.Resources = out
		return snap, nil
	})
	return err
}

// ListLegal returns legal entries newest-first.
func (s *DefaultDirectoryService) ListLegal(ctx context.Context) ([]models.LegalEntry, error) {
	return s.Store.Snapshot().Legal, nil
}

// AddLegal assigns a fresh id and prepends the entry.
func (s *DefaultDirectoryService) AddLegal(ctx context.Context, draft models.LegalEntry) (*models.LegalEntry, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, utils.NewValidationError("title", "a legal entry requires a title")
	}

	draft.ID = uuid.New().String()
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Legal = append([]models.LegalEntry{draft}, snap.Legal...)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Legal entry added", zap.String("id", draft.ID), zap.String("title", draft.Title))
	return &draft, nil
}

// UpdateLegal replaces the stored entry with the same id. Same contract as
// UpdateResource.
func (s *DefaultDirectoryService) UpdateLegal(ctx context.Context, entry models.LegalEntry) (*models.LegalEntry, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return nil, utils.NewValidationError("title", "a legal entry requires a title")
	}

	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		for i, e := range snap.Legal {
			if e.ID == entry.ID {
				snap.Legal[i] = entry
				return snap, nil
			}
		}
		return models.Snapshot{}, utils.NewNotFoundError("legal entry", entry.ID)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveLegal deletes the entry with the given id, idempotently.
func (s *DefaultDirectoryService) RemoveLegal(ctx context.Context, id string) error {
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		out := snap.Legal[:0]
		for _, e := range snap.Legal {
			if e.ID != id {
				out = append(out, e)
			}
		}
		snap.Legal = out
		return snap, nil
	})
	return err
}

// ListUsers returns users in insertion order.
func (s *DefaultDirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.Snapshot().Users, nil
}

// AddUser appends a new user. Users keep insertion order rather than the
// newest-first order of the other collections.
func (s *DefaultDirectoryService) AddUser(ctx context.Context, name, role string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, utils.NewValidationError("name", "a user requires a name")
	}
	if !models.ValidRole(role) {
		return nil, utils.NewValidationError("role", "unknown role "+role)
	}

	user := models.User{ID: uuid.New().String(), Name: name, Role: role}
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Users = append(snap.Users, user)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("User added", zap.String("id", user.ID), zap.String("role", user.Role))
	return &user, nil
}

// UpdateUser replaces the stored user with the same id, under the same
// validation contract as AddUser. The original admin screen only ever did
// remove-and-re-add; the operation exists for API completeness.
func (s *DefaultDirectoryService) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		return nil, utils.NewValidationError("name", "a user requires a name")
	}
	if !models.ValidRole(user.Role) {
		return nil, utils.NewValidationError("role", "unknown role "+user.Role)
	}

	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		for i, u := range snap.Users {
			if u.ID == user.ID {
				snap.Users[i] = user
				return snap, nil
			}
		}
		return models.Snapshot{}, utils.NewNotFoundError("user", user.ID)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveUser deletes the user with the given id, idempotently.
func (s *DefaultDirectoryService) RemoveUser(ctx context.Context, id string) error {
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		out := snap.Users[:0]
		for _, u := range snap.Users {
			if u.ID != id {
				out = append(out, u)
			}
		}
		snap.Users = out
		return snap, nil
	})
	return err
}

// Counts returns collection sizes for the admin overview.
func (s *DefaultDirectoryService) Counts(ctx context.Context) (Counts, error) {
	snap := s.Store.Snapshot()
	return Counts{
		Users:     len(snap.Users),
		Resources: len(snap.Resources),
		Legal:     len(snap.Legal),
	}, nil
}
