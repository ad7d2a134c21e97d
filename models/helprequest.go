package models

import "time"

// Case statuses. "In progress" keeps the space it has always had on the wire.
const (
	StatusNew        = "New"
	StatusAssigned   = "Assigned"
	StatusInProgress = "In progress"
	StatusClosed     = "Closed"
)

// Contact preferences for a help request. Hidden means the requester asked
// not to be contacted directly.
const (
	ContactHidden   = "Hidden"
	ContactPhone    = "Phone"
	ContactSMS      = "SMS"
	ContactWhatsApp = "WhatsApp"
	ContactEmail    = "Email"
)

// CaseUpdate is one entry in a case's append-only progress log.
type CaseUpdate struct {
	At   time.Time `bson:"at" json:"at"`
	Note string    `bson:"note" json:"note"`
}

// HelpRequest is a single support case. ByName may be empty for anonymous
// requests. Updates is ordered newest-first and entries are never mutated
// or removed once written.
type HelpRequest struct {
	ID          string       `bson:"id" json:"id"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	Status      string       `bson:"status" json:"status"`
	ByName      string       `bson:"byName,omitempty" json:"byName,omitempty"`
	ContactPref string       `bson:"contactPref" json:"contactPref"`
	Details     string       `bson:"details,omitempty" json:"details,omitempty"`
	Region      string       `bson:"region,omitempty" json:"region,omitempty"`
	AssignedTo  string       `bson:"assignedTo" json:"assignedTo"`
	Updates     []CaseUpdate `bson:"updates" json:"updates"`
}

// HelpRequestDraft carries the intake-form fields for creating a case.
// AssignedTo is accepted as given; it is not checked against the user
// directory (matching the original intake behavior).
type HelpRequestDraft struct {
	ByName      string `json:"byName"`
	ContactPref string `json:"contactPref"`
	Details     string `json:"details"`
	Region      string `json:"region"`
	AssignedTo  string `json:"assignedTo"`
}

// ValidStatus reports whether s is one of the known case statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusAssigned, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// ValidContactPref reports whether p is a known contact preference.
func ValidContactPref(p string) bool {
	switch p {
	case ContactHidden, ContactPhone, ContactSMS, ContactWhatsApp, ContactEmail:
		return true
	}
	return false
}
