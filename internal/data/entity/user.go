package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleLabourer UserRole = "labourer"
)

// ValidRole reports whether the given role is one of the allowed roles.
// Roles are fixed at registration and never change afterwards.
func ValidRole(role string) bool {
	switch UserRole(role) {
	case RoleCustomer, RoleLabourer:
		return true
	}
	return false
}

// User is an account record. The username doubles as the address used
// for booking notifications.
type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
