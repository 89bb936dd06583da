package auth

import "github.com/Haris-56/coupon/pkg/models"

// CanEdit reports whether the session may create or update entities.
func CanEdit(s Session) bool {
	return s.IsAuth && (s.Role == models.RoleAdmin || s.Role == models.RoleEditor)
}

// CanDelete reports whether the session may delete entities. Deletion is
// admin-only.
func CanDelete(s Session) bool {
	return s.IsAuth && s.Role == models.RoleAdmin
}
