// Package entity contains the core business objects of the project.
package entity

// Role represents the application role assigned to a user at registration.
// The role is chosen exactly once; no exposed operation changes it afterwards.
type Role string

const (
	// RoleBuyer indicates a buyer, the default role.
	RoleBuyer Role = "buyer"
	// RoleArtisan indicates a seller. Artisans must pass verification before
	// they may list products or access the artisan hub.
	RoleArtisan Role = "artisan"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleArtisan:
		return true
	default:
		return false
	}
}
