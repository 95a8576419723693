// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a role claim carried by an access token.
type Role string

const (
	// RoleCitizen files reports.
	RoleCitizen Role = "citizen"
	// RoleAuthority plans collection routes and moves reports through cleanup.
	RoleAuthority Role = "authority"
)

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleCitizen || r == RoleAuthority
}

// Roles is a slice of Role for convenience.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts token claims to Roles, dropping unknown values.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
