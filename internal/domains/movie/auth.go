package movie

// RoleAdmin is the role required for every mutating operation.
const RoleAdmin = "admin"

// IsAuthorized is the single authorization predicate applied before each
// mutating operation. An absent role and a non-admin role are treated
// identically by callers.
func IsAuthorized(role, required string) bool {
	return role == required
}
