// Package lifecycle owns the help-request state machine: creation,
// counsellor assignment, and status transitions with an append-only
// progress log.
//
// The engine trusts its callers: it performs no role checks and does not
// verify that an assignee exists in the user directory. Authorization is a
// view-layer concern composed on top (see the policy package).
package lifecycle

import (
	"context"

	"safebridge/models"
	"safebridge/store"
)

type CaseService interface {
	Create(ctx context.Context, draft models.HelpRequestDraft) (*models.HelpRequest, error)
	Assign(ctx context.Context, caseID, counsellorID string) (*models.HelpRequest, error)
	UpdateStatus(ctx context.Context, caseID, status, note string) (*models.HelpRequest, error)
	Get(ctx context.Context, caseID string) (*models.HelpRequest, error)
	List(ctx context.Context) ([]models.HelpRequest, error)
	Stats(ctx context.Context) (CaseStats, error)
}

// CaseStats summarizes the case collection for the overview views.
type CaseStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	Active     int `json:"active"` // Assigned or In progress
	Closed     int `json:"closed"`
	Unassigned int `json:"unassigned"`
}

// DefaultCaseService is the production implementation.
type DefaultCaseService struct {
	Store *store.Store
}
