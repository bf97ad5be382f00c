package entity

// Session roles. A token belongs to either a user or a hospital account.
const (
	RoleUser     = "user"
	RoleHospital = "hospital"
)

// IsValidRole reports whether role names a known account kind.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleHospital
}
