package models

// Role is the user's role as stored in the users relation. Values other than
// the known constants are preserved verbatim and carry no permissions.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
)

// PermissionSet is the capability set granted to a role. The zero value
// serializes as {} so an unknown role grants nothing without being an error.
type PermissionSet struct {
	All       bool `json:"all,omitempty"`
	Inventory bool `json:"inventory,omitempty"`
	Quotes    bool `json:"quotes,omitempty"`
	Settings  bool `json:"settings,omitempty"`
	Reports   bool `json:"reports,omitempty"`
	POS       bool `json:"pos,omitempty"`
}

// Permissions maps a role to its capability set. The mapping is total:
// anything that is not admin or seller gets the empty set.
func (r Role) Permissions() PermissionSet {
	switch r {
	case RoleAdmin:
		return PermissionSet{
			All:       true,
			Inventory: true,
			Quotes:    true,
			Settings:  true,
			Reports:   true,
			POS:       true,
		}
	case RoleSeller:
		return PermissionSet{
			POS:       true,
			Quotes:    true,
			Inventory: true,
		}
	default:
		return PermissionSet{}
	}
}
