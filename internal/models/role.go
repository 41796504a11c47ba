package models

// Role is the closed privilege tier of a portal account. Values are ordered:
// a higher tier implies broader access. The numeric values are part of the
// stored data and must not be renumbered.
type Role int

const (
	RoleCitizen Role = 1

	RoleMunicipalityWorker Role = 90
	RoleMunicipalityAdmin  Role = 100

	RoleModerator Role = 555
	RoleAdmin     Role = 777
)

// IsStaff reports whether the account may publish news. Any tier other than
// the base citizen tier qualifies.
func (r Role) IsStaff() bool {
	return r != RoleCitizen
}

// AtLeast reports whether r grants at least the given tier.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

func (r Role) String() string {
	switch r {
	case RoleCitizen:
		return "citizen"
	case RoleMunicipalityWorker:
		return "municipality_worker"
	case RoleMunicipalityAdmin:
		return "municipality_admin"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}
