package models

// Resource types as they appear in the directory.
const (
	ResourceHelpline    = "Helpline"
	ResourcePolice      = "Police"
	ResourceHealth      = "Health"
	ResourceShelter     = "Shelter"
	ResourceNGO         = "NGO"
	ResourceLegalAid    = "Legal Aid"
	ResourceCounselling = "Counselling"
)

// Resource is a directory entry pointing at an external support service
// (helpline, shelter, police contact, NGO and so on).
type Resource struct {
	ID      string `bson:"id" json:"id"`
	Type    string `bson:"type" json:"type"`
	Title   string `bson:"title" json:"title"`
	Contact string `bson:"contact,omitempty" json:"contact,omitempty"`
	Region  string `bson:"region,omitempty" json:"region,omitempty"`
	URL     string `bson:"url,omitempty" json:"url,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
}
