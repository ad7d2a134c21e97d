package lifecycle

import (
	"context"
	"time"

	"safebridge/models"
	"safebridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create opens a new case. Every field of the draft is optional: requests
// may be fully anonymous. ContactPref defaults to Hidden. AssignedTo is
// stored as given without checking the user directory; the intake form has
// always allowed pre-selecting a counsellor by id.
func (s *DefaultCaseService) Create(ctx context.Context, draft models.HelpRequestDraft) (*models.HelpRequest, error) {
	if draft.ContactPref == "" {
		draft.ContactPref = models.ContactHidden
	}
	if !models.ValidContactPref(draft.ContactPref) {
		return nil, utils.NewValidationError("contactPref", "unknown contact preference "+draft.ContactPref)
	}

	req := models.HelpRequest{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Status:      models.StatusNew,
		ByName:      draft.ByName,
		ContactPref: draft.ContactPref,
		Details:     draft.Details,
		Region:      draft.Region,
		AssignedTo:  draft.AssignedTo,
		Updates:     []models.CaseUpdate{},
	}

	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		snap.HelpRequests = append([]models.HelpRequest{req}, snap.HelpRequests...)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Help request created",
		zap.String("id", req.ID),
		zap.String("region", req.Region),
		zap.Bool("anonymous", req.ByName == ""))
	return &req, nil
}

// Assign sets the case's counsellor and unconditionally moves the status
// to Assigned, whatever the prior status was: reassigning an in-progress
// or closed case resets it to Assigned. An empty counsellorID clears the
// assignment but still forces the status; the case-actions form has always
// offered a blank assignee option and this behavior is preserved.
func (s *DefaultCaseService) Assign(ctx context.Context, caseID, counsellorID string) (*models.HelpRequest, error) {
	var updated models.HelpRequest
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		for i, h := range snap.HelpRequests {
			if h.ID == caseID {
				h.AssignedTo = counsellorID
				h.Status = models.StatusAssigned
				snap.HelpRequests[i] = h
				updated = h
				return snap, nil
			}
		}
		return models.Snapshot{}, utils.NewNotFoundError("case", caseID)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Case assigned",
		zap.String("case", caseID), zap.String("counsellor", counsellorID))
	return &updated, nil
}

// UpdateStatus sets the case status and prepends an entry to the progress
// log. Every status change is logged, including ones with an empty note;
// the log is append-only and ordered newest-first. Unknown status values
// are rejected.
func (s *DefaultCaseService) UpdateStatus(ctx context.Context, caseID, status, note string) (*models.HelpRequest, error) {
	if !models.ValidStatus(status) {
		return nil, utils.NewValidationError("status", "unknown status "+status)
	}

	var updated models.HelpRequest
	_, err := s.Store.Apply(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		for i, h := range snap.HelpRequests {
			if h.ID == caseID {
				h.Status = status
				h.Updates = append([]models.CaseUpdate{{At: time.Now(), Note: note}}, h.Updates...)
				snap.HelpRequests[i] = h
				updated = h
				return snap, nil
			}
		}
		return models.Snapshot{}, utils.NewNotFoundError("case", caseID)
	})
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Case status updated",
		zap.String("case", caseID), zap.String("status", status), zap.Int("updates", len(updated.Updates)))
	return &updated, nil
}

// Get returns the case with the given id.
func (s *DefaultCaseService) Get(ctx context.Context, caseID string) (*models.HelpRequest, error) {
	for _, h := range s.Store.Snapshot().HelpRequests {
		if h.ID == caseID {
			return &h, nil
		}
	}
	return nil, utils.NewNotFoundError("case", caseID)
}

// List returns all cases newest-first.
func (s *DefaultCaseService) List(ctx context.Context) ([]models.HelpRequest, error) {
	return s.Store.Snapshot().HelpRequests, nil
}

// Stats summarizes the full case collection.
func (s *DefaultCaseService) Stats(ctx context.Context) (CaseStats, error) {
	return Summarize(s.Store.Snapshot().HelpRequests), nil
}

// Summarize computes counts over a case list, which may already be scoped
// to a single counsellor.
func Summarize(cases []models.HelpRequest) CaseStats {
	stats := CaseStats{}
	for _, h := range cases {
		stats.Total++
		switch h.Status {
		case models.StatusNew:
			stats.New++
		case models.StatusClosed:
			stats.Closed++
		default:
			stats.Active++
		}
		if h.AssignedTo == "" {
			stats.Unassigned++
		}
	}
	return stats
}
