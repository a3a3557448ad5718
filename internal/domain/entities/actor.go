package entities

// Role is the staff role carried by an authenticated actor.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleTechnician   Role = "TECHNICIAN"
	RoleReceptionist Role = "RECEPTIONIST"
)

func (r Role) String() string {
	return string(r)
}

// CanChangeStatus reports whether the role may drive the device lifecycle.
// Receptionists register devices and record billing but never move a device
// through the repair statuses.
func (r Role) CanChangeStatus() bool {
	return r == RoleAdmin || r == RoleTechnician
}

// Actor is the authenticated identity behind a request. It is passed
// explicitly into operations that need attribution or role checks, never
// read from ambient state.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
