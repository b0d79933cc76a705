package user

type Role string

const (
	RoleNewFarmer Role = "new_farmer"
	RoleFarmOwner Role = "farm_owner"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleNewFarmer, RoleFarmOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) CanOwnFarm() bool {
	return r == RoleFarmOwner || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
