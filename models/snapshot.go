package models

import "time"

// SnapshotVersion is the current schema version of the persisted blob. The
// original format carried no version field; it is counted as version 1.
const SnapshotVersion = 1

// SessionRecord mirrors the "sessions" key of the persisted blob. The key
// predates this service and was always empty; it is kept for format
// fidelity, and live sessions are tracked in Redis instead.
type SessionRecord struct {
	UserID   string    `bson:"userId" json:"userId"`
	Role     string    `bson:"role" json:"role"`
	IssuedAt time.Time `bson:"issuedAt" json:"issuedAt"`
}

// Snapshot is the full domain state: the unit of persistence and the unit
// handed to readers. Collections are ordered newest-first except Users,
// which append (preserving the original insertion order).
type Snapshot struct {
	Version      int             `bson:"version" json:"version"`
	Users        []User          `bson:"users" json:"users"`
	Resources    []Resource      `bson:"resources" json:"resources"`
	Legal        []LegalEntry    `bson:"legal" json:"legal"`
	HelpRequests []HelpRequest   `bson:"helpRequests" json:"helpRequests"`
	Sessions     []SessionRecord `bson:"sessions" json:"sessions"`
}

// EmptySnapshot returns a valid zero state with allocated collections, so
// the persisted form serializes as empty arrays rather than nulls.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Version:      SnapshotVersion,
		Users:        []User{},
		Resources:    []Resource{},
		Legal:        []LegalEntry{},
		HelpRequests: []HelpRequest{},
		Sessions:     []SessionRecord{},
	}
}

// Clone returns a deep copy. Mutating the copy never affects the receiver;
// the store relies on this to hand out snapshots without aliasing.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Users = append([]User(nil), s.Users...)
	out.Resources = append([]Resource(nil), s.Resources...)
	out.Legal = append([]LegalEntry(nil), s.Legal...)
	out.Sessions = append([]SessionRecord(nil), s.Sessions...)
	out.HelpRequests = make([]HelpRequest, len(s.HelpRequests))
	for i, h := range s.HelpRequests {
		h.Updates = append([]CaseUpdate(nil), h.Updates...)
		out.HelpRequests[i] = h
	}
	return out
}
