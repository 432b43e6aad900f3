package domain

// Role represents the role of an authenticated principal
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole парсит роль из строки (например, из claims токена)
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// CanManageSlots returns true if the role is allowed to create and delete slots
func (r Role) CanManageSlots() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanViewAllAppointments returns true if the role sees every appointment,
// not just the principal's own
func (r Role) CanViewAllAppointments() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanUpdateAppointmentStatus returns true if the role is allowed to
// confirm or cancel appointments
func (r Role) CanUpdateAppointmentStatus() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Principal represents an authenticated caller of the API
type Principal struct {
	UserID int64
	Role   Role
}
