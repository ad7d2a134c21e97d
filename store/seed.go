package store

import (
	"safebridge/models"

	"github.com/google/uuid"
)

// Seed returns the default state for a fresh installation. The operator
// accounts keep their historical fixed ids; directory content gets fresh
// ids per installation.
func Seed() models.Snapshot {
	return models.Snapshot{
		Version: models.SnapshotVersion,
		Users: []models.User{
			{ID: "u-admin", Name: "Admin", Role: models.RoleAdmin},
			{ID: "u-c1", Name: "Counsellor A", Role: models.RoleCounsellor},
			{ID: "u-l1", Name: "Legal Advisor A", Role: models.RoleLegalAdvisor},
		},
		Resources: []models.Resource{
			{ID: uuid.New().String(), Type: models.ResourceHelpline, Title: "National DV Helpline", Contact: "181", Region: "India", Notes: "24x7, women-centric"},
			{ID: uuid.New().String(), Type: models.ResourcePolice, Title: "Emergency Police", Contact: "112", Region: "India", Notes: "Immediate danger"},
			{ID: uuid.New().String(), Type: models.ResourceNGO, Title: "Sakhi One Stop Centre", Region: "State-wise", Notes: "Medical, legal, counselling support"},
			{ID: uuid.New().String(), Type: models.ResourceHealth, Title: "Medical Emergency", Contact: "108", Region: "India", Notes: "Ambulance"},
		},
		Legal: []models.LegalEntry{
			{ID: uuid.New().String(), Title: "Protection of Women from Domestic Violence Act, 2005", Summary: "Civil remedies: protection, residence, monetary, custody, compensation orders."},
			{ID: uuid.New().String(), Title: "Section 498A IPC", Summary: "Cruelty by husband/relatives; cognizable offense."},
			{ID: uuid.New().String(), Title: "POCSO Act (if minor involved)", Summary: "Protection of children from sexual offenses."},
		},
		HelpRequests: []models.HelpRequest{},
		Sessions:     []models.SessionRecord{},
	}
}
