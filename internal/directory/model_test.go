package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRecordNormalize(t *testing.T) {
	tests := []struct {
		name   string
		record userRecord
		want   Employee
	}{
		{
			name: "active user with all fields",
			record: userRecord{
				UserID: 7, FullName: "Ana Cruz Reyes", FirstName: "Ana", MiddleName: "Cruz",
				LastName: "Reyes", Username: "anar", Email: "ana@example.com",
				PhoneNumber: "09171234567", UserRole: RoleManager, System: SystemPOS, IsDisabled: false,
			},
			want: Employee{
				ID: 7, FullName: "Ana Cruz Reyes", FirstName: "Ana", MiddleName: "Cruz",
				LastName: "Reyes", Username: "anar", Email: "ana@example.com",
				PhoneNumber: "09171234567", Role: RoleManager, System: SystemPOS,
				Status: StatusActive, Disabled: false,
			},
		},
		{
			name: "disabled user reads Inactive",
			record: userRecord{
				UserID: 3, FullName: "Ben Tan", Username: "bent", Email: "ben@example.com",
				UserRole: RoleStaff, System: SystemIMS, IsDisabled: true, PhoneNumber: "0999",
			},
			want: Employee{
				ID: 3, FullName: "Ben Tan", Username: "bent", Email: "ben@example.com",
				PhoneNumber: "0999", Role: RoleStaff, System: SystemIMS,
				Status: StatusInactive, Disabled: true,
			},
		},
		{
			name: "missing phone and system read as N/A",
			record: userRecord{
				UserID: 9, FullName: "Cara Uy", Username: "carau", Email: "cara@example.com",
				UserRole: RoleCashier,
			},
			want: Employee{
				ID: 9, FullName: "Cara Uy", Username: "carau", Email: "cara@example.com",
				PhoneNumber: NotAvailable, Role: RoleCashier, System: NotAvailable,
				Status: StatusActive,
			},
		},
		{
			name: "full name assembled from parts when absent",
			record: userRecord{
				UserID: 4, FirstName: "Dan", LastName: "Ong", Suffix: "Jr",
				Username: "dano", Email: "dan@example.com", UserRole: RoleRider, System: SystemOOS,
			},
			want: Employee{
				ID: 4, FullName: "Dan Ong Jr", FirstName: "Dan", LastName: "Ong", Suffix: "Jr",
				Username: "dano", Email: "dan@example.com", PhoneNumber: NotAvailable,
				Role: RoleRider, System: SystemOOS, Status: StatusActive,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.normalize())
		})
	}
}

func TestStatusDerivation(t *testing.T) {
	// Inactive exactly when disabled, both directions
	assert.Equal(t, StatusInactive, statusOf(true))
	assert.Equal(t, StatusActive, statusOf(false))
}

func TestValidRoleAndSystem(t *testing.T) {
	assert.True(t, ValidRole(RoleSuperAdmin))
	assert.True(t, ValidRole("manager"))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))

	assert.True(t, ValidSystem(SystemAUTH))
	assert.False(t, ValidSystem("pos"))
	assert.False(t, ValidSystem(""))
}
