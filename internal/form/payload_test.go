package form

import (
	"testing"

	"ums-console/internal/directory"

	"github.com/stretchr/testify/assert"
)

func fieldNames(fields []directory.FormField) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func TestCreatePayload(t *testing.T) {
	t.Run("pin rides along only for a POS manager", func(t *testing.T) {
		f := openCreate()
		f.Set(FieldRole, directory.RoleManager)
		f.Set(FieldSystem, directory.SystemPOS)
		f.Set(FieldPin, "4321")
		assert.Contains(t, fieldNames(Payload(f)), "pin")

		f.Set(FieldSystem, directory.SystemIMS)
		assert.NotContains(t, fieldNames(Payload(f)), "pin")
	})

	t.Run("full field set always present", func(t *testing.T) {
		f := openCreate()
		assert.Equal(t, []string{
			"firstName", "middleName", "lastName", "suffix", "username",
			"password", "email", "phoneNumber", "userRole", "system",
		}, fieldNames(Payload(f)))
	})
}

func TestUpdatePayload(t *testing.T) {
	emp := directory.Employee{
		ID: 4, FirstName: "Ben", LastName: "Tan", Username: "bent",
		Email: "ben@example.com", Role: directory.RoleManager, System: directory.SystemPOS,
	}

	t.Run("username never resent, blank password omitted", func(t *testing.T) {
		f := New(ModeEdit)
		f.OpenFor(emp)
		f.Set(FieldConfirmPassword, "whatever was left in the field")
		names := fieldNames(Payload(f))
		assert.NotContains(t, names, "username")
		assert.NotContains(t, names, "password")
		assert.NotContains(t, names, "confirmPassword")
	})

	t.Run("entered password included", func(t *testing.T) {
		f := New(ModeEdit)
		f.OpenFor(emp)
		f.Set(FieldPassword, "longenough12")
		assert.Contains(t, fieldNames(Payload(f)), "password")
	})

	t.Run("blank pin means leave unchanged", func(t *testing.T) {
		f := New(ModeEdit)
		f.OpenFor(emp)
		assert.NotContains(t, fieldNames(Payload(f)), "pin")

		f.Set(FieldPin, "9876")
		assert.Contains(t, fieldNames(Payload(f)), "pin")
	})

	t.Run("pin dropped when the combination does not hold", func(t *testing.T) {
		f := New(ModeEdit)
		f.OpenFor(emp)
		f.Set(FieldRole, directory.RoleStaff)
		f.Set(FieldPin, "9876")
		assert.NotContains(t, fieldNames(Payload(f)), "pin")
	})
}
