// Package policy maps a session role to its permitted views and mutations.
// It is a fixed declarative table consulted both by the HTTP middleware and
// by handlers before exposing case lists; the lifecycle engine itself stays
// caller-trusting.
package policy

import (
	"safebridge/models"
	"safebridge/utils"
)

// Capability names a guarded mutation or view surface. The string value
// reads naturally inside ForbiddenError messages.
type Capability string

const (
	CapManageResources Capability = "manage resources"
	CapManageLegal     Capability = "manage legal entries"
	CapManageUsers     Capability = "manage users"
	CapCreateCase      Capability = "create help requests"
	CapViewCases       Capability = "view cases"
	CapActOnCases      Capability = "act on cases"
	CapWipeData        Capability = "wipe stored data"
)

// viewsByRole is the role → tab table carried over from the original UI.
var viewsByRole = map[string][]string{
	models.RoleSurvivor:     {"Overview", "Resources", "Get Help", "Legal Rights", "Safety Plan"},
	models.RoleCounsellor:   {"Overview", "Assigned Cases", "Progress Notes", "Resources"},
	models.RoleLegalAdvisor: {"Overview", "Legal Resources", "Case Actions"},
	models.RoleAdmin:        {"Overview", "Content", "Users", "Data & Security"},
}

var rolesByCapability = map[Capability][]string{
	CapManageResources: {models.RoleAdmin},
	CapManageLegal:     {models.RoleAdmin, models.RoleLegalAdvisor},
	CapManageUsers:     {models.RoleAdmin},
	CapCreateCase:      {models.RoleSurvivor},
	CapViewCases:       {models.RoleCounsellor, models.RoleLegalAdvisor, models.RoleAdmin},
	CapActOnCases:      {models.RoleCounsellor, models.RoleLegalAdvisor},
	CapWipeData:        {models.RoleAdmin},
}

// ViewsFor returns the views available to a role. Unknown roles fall back
// to a bare Overview, as the original tab table did.
func ViewsFor(role string) []string {
	views, ok := viewsByRole[role]
	if !ok {
		return []string{"Overview"}
	}
	return append([]string(nil), views...)
}

// Can reports whether the role holds the capability.
func Can(role string, cap Capability) bool {
	for _, r := range rolesByCapability[cap] {
		if r == role {
			return true
		}
	}
	return false
}

// Allow returns nil when the role holds the capability and a
// ForbiddenError otherwise, so non-UI callers cannot bypass the table.
func Allow(role string, cap Capability) error {
	if !Can(role, cap) {
		return utils.NewForbiddenError(role, string(cap))
	}
	return nil
}

// MineFilter returns exactly the cases assigned to userID. Cases with a
// different or empty assignee are excluded.
func MineFilter(cases []models.HelpRequest, userID string) []models.HelpRequest {
	out := []models.HelpRequest{}
	for _, h := range cases {
		if h.AssignedTo != "" && h.AssignedTo == userID {
			out = append(out, h)
		}
	}
	return out
}

// ScopeCases narrows a case list to what the session may see: counsellors
// get only their own cases, legal advisors and admins the full list.
func ScopeCases(role, userID string, cases []models.HelpRequest) []models.HelpRequest {
	if role == models.RoleCounsellor {
		return MineFilter(cases, userID)
	}
	return cases
}

// AllowCaseView checks read access to a specific case: a counsellor may
// only read cases assigned to them, the other viewing roles any case.
func AllowCaseView(role, userID string, h models.HelpRequest) error {
	if err := Allow(role, CapViewCases); err != nil {
		return err
	}
	if role == models.RoleCounsellor && h.AssignedTo != userID {
		return utils.NewForbiddenError(role, "view cases assigned to others")
	}
	return nil
}

// AllowCaseAccess checks a mutation against a specific case: a counsellor
// may only touch cases assigned to them, a legal advisor any case. Admins
// can view but not act; case work stays with the caseworkers.
func AllowCaseAccess(role, userID string, h models.HelpRequest) error {
	if err := Allow(role, CapActOnCases); err != nil {
		return err
	}
	if role == models.RoleCounsellor && h.AssignedTo != userID {
		return utils.NewForbiddenError(role, "act on cases assigned to others")
	}
	return nil
}
