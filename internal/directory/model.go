package directory

import "strings"

// Role wire values accepted by the auth service.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleRider      = "rider"
	RoleCashier    = "cashier"
	RoleUser       = "user"
	RoleSuperAdmin = "super admin"
)

// Roles lists every role the service accepts, in menu order.
var Roles = []string{RoleManager, RoleAdmin, RoleStaff, RoleRider, RoleCashier, RoleUser, RoleSuperAdmin}

// Target systems sharing the auth service.
const (
	SystemIMS  = "IMS"
	SystemPOS  = "POS"
	SystemOOS  = "OOS"
	SystemAUTH = "AUTH"
)

var Systems = []string{SystemIMS, SystemPOS, SystemOOS, SystemAUTH}

// NotAvailable is the display sentinel for absent phone/system values.
const NotAvailable = "N/A"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Employee is the normalized, repository-owned record. ID and
// Username are assigned by the service and immutable afterwards.
// Status is purely derived from Disabled; nothing edits it directly.
type Employee struct {
	ID          int
	FullName    string
	FirstName   string
	MiddleName  string
	LastName    string
	Suffix      string
	Username    string
	Email       string
	PhoneNumber string
	Role        string
	System      string
	Status      string
	Disabled    bool
	CreatedAt   string
}

// userRecord mirrors one element of the list-users response.
type userRecord struct {
	UserID      int    `json:"userID"`
	FullName    string `json:"fullName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	Suffix      string `json:"suffix"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	UserRole    string `json:"userRole"`
	System      string `json:"system"`
	IsDisabled  bool   `json:"isDisabled"`
	CreatedAt   string `json:"createdAt"`
}

func (r userRecord) normalize() Employee {
	fullName := strings.TrimSpace(r.FullName)
	if fullName == "" {
		parts := []string{}
		for _, p := range []string{r.FirstName, r.MiddleName, r.LastName, r.Suffix} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		fullName = strings.Join(parts, " ")
	}

	system := r.System
	if system == "" {
		system = NotAvailable
	}
	phone := r.PhoneNumber
	if phone == "" {
		phone = NotAvailable
	}

	return Employee{
		ID:          r.UserID,
		FullName:    fullName,
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		LastName:    r.LastName,
		Suffix:      r.Suffix,
		Username:    r.Username,
		Email:       r.Email,
		PhoneNumber: phone,
		Role:        r.UserRole,
		System:      system,
		Status:      statusOf(r.IsDisabled),
		Disabled:    r.IsDisabled,
		CreatedAt:   r.CreatedAt,
	}
}

func statusOf(disabled bool) string {
	if disabled {
		return StatusInactive
	}
	return StatusActive
}

// ValidRole reports whether the service accepts the role value.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ValidSystem reports whether the service accepts the system value.
func ValidSystem(system string) bool {
	for _, s := range Systems {
		if s == system {
			return true
		}
	}
	return false
}
