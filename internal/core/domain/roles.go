package domain

import "strings"

// Portal roles
const (
	RoleStudent  = "student"
	RoleAdmin    = "admin"
	RoleOfficial = "official"
)

// NormalizeRole lowercases a role for comparison and storage
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// IsValidRole checks if a role is one of the portal roles.
// Expects a normalized role.
func IsValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleAdmin, RoleOfficial:
		return true
	}
	return false
}
