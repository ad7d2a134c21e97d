package models

// LegalEntry is a plain-language reference to an act, section or guideline.
type LegalEntry struct {
	ID      string `bson:"id" json:"id"`
	Title   string `bson:"title" json:"title"`
	Summary string `bson:"summary,omitempty" json:"summary,omitempty"`
	Link    string `bson:"link,omitempty" json:"link,omitempty"`
}
