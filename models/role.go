package models

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleUser      UserRole = "user"
)

// DefaultRole is assigned to every newly registered user.
const DefaultRole = RoleUser

type RoleInfo struct {
	ID   UserRole `json:"id"`
	Name string   `json:"name"`
}

var roleCatalog = []RoleInfo{
	{ID: RoleAdmin, Name: "Admin"},
	{ID: RoleModerator, Name: "Moderator"},
	{ID: RoleUser, Name: "User"},
}

// Roles returns the static role catalog in privilege order.
func Roles() []RoleInfo {
	out := make([]RoleInfo, len(roleCatalog))
	copy(out, roleCatalog)
	return out
}

func (r UserRole) Valid() bool {
	for _, info := range roleCatalog {
		if info.ID == r {
			return true
		}
	}
	return false
}

// IsAuthorized reports whether role is one of allowed. Roles carry no
// hierarchy: an admin only passes when admin is listed.
func IsAuthorized(role UserRole, allowed ...UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
