package models

// Role values. The wire strings match the persisted snapshot format, which
// predates this service, so two of them carry spaces.
const (
	RoleAdmin        = "Admin"
	RoleCounsellor   = "Counsellor"
	RoleLegalAdvisor = "Legal Advisor"
	RoleSurvivor     = "Victim/Survivor"
)

// User represents a directory member: an operator (admin, counsellor, legal
// advisor) or a survivor account. There is no credential material; identity
// is simulated via the session service.
type User struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Role string `bson:"role" json:"role"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleCounsellor, RoleLegalAdvisor, RoleSurvivor:
		return true
	}
	return false
}
