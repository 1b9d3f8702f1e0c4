package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ums-console/internal/directory"
	"ums-console/internal/form"
	"ums-console/internal/session"
)

// errCancelled aborts a wizard without submitting.
var errCancelled = errors.New("cancelled")

// runAddWizard walks the add-employee form field by field, validates,
// and submits. Remote rejections keep the entered data so the user can
// fix and resubmit without retyping everything.
func (c *Console) runAddWizard(ctx context.Context) error {
	f := c.engine.OpenCreate()
	fmt.Println("Add Employee — type 'cancel' at any prompt to abort.")
	return c.runWizard(ctx, f, "Employee added successfully!")
}

// runEditWizard pre-seeds the form from the target record. Password
// and PIN start blank; leaving them blank keeps the stored values.
func (c *Console) runEditWizard(ctx context.Context, emp directory.Employee) error {
	f := c.engine.OpenEdit(emp)
	fmt.Printf("Edit Employee #%d (%s) — blank keeps the current value, 'cancel' aborts.\n", emp.ID, emp.Username)
	return c.runWizard(ctx, f, "Employee updated successfully!")
}

func (c *Console) runWizard(ctx context.Context, f *form.Form, successMsg string) error {
	for {
		if err := c.promptFields(f); err != nil {
			c.engine.Cancel()
			if err == errCancelled {
				fmt.Println("Cancelled. No changes were made.")
				return nil
			}
			return err
		}

		err := c.engine.Submit(ctx)
		if err == nil {
			fmt.Println(successMsg)
			c.loadErr = nil
			c.printList()
			return nil
		}
		if errors.Is(err, form.ErrFieldErrors) {
			printFieldErrors(f)
		} else if errors.Is(err, directory.ErrUnauthorized) || errors.Is(err, session.ErrNoToken) {
			c.engine.Cancel()
			return err
		} else {
			// Remote rejection: show the service's message verbatim
			fmt.Printf("Error: %v\n", err)
		}

		if !c.confirm("Fix the form and resubmit?") {
			c.engine.Cancel()
			fmt.Println("Cancelled. No changes were made.")
			return nil
		}
	}
}

// wizardField is one prompt in submission order.
type wizardField struct {
	key    string
	label  string
	secret bool
	skip   func(f *form.Form) bool
}

var wizardFields = []wizardField{
	{key: form.FieldFirstName, label: "First Name"},
	{key: form.FieldMiddleName, label: "Middle Name"},
	{key: form.FieldLastName, label: "Last Name"},
	{key: form.FieldSuffix, label: "Suffix"},
	{key: form.FieldUsername, label: "Username", skip: func(f *form.Form) bool { return f.Mode == form.ModeEdit }},
	{key: form.FieldEmail, label: "Email"},
	{key: form.FieldPhone, label: "Phone Number"},
	{key: form.FieldRole, label: "Role"},
	{key: form.FieldSystem, label: "System"},
	{key: form.FieldPin, label: "Manager PIN (4 digits)", secret: true, skip: func(f *form.Form) bool { return !f.PinActive() }},
	{key: form.FieldPassword, label: "Password", secret: true},
	{key: form.FieldConfirmPassword, label: "Confirm Password", secret: true},
}

// promptFields asks for every visible field. The required/visible set
// is derived from the form snapshot each pass, so choosing
// role=manager + system=POS surfaces the PIN prompt on the same run.
func (c *Console) promptFields(f *form.Form) error {
	for _, field := range wizardFields {
		if field.key == form.FieldRole {
			fmt.Printf("  Roles: %s\n", strings.Join(directory.Roles, ", "))
		}
		if field.key == form.FieldSystem {
			fmt.Printf("  Systems: %s\n", strings.Join(directory.Systems, ", "))
		}
		if field.skip != nil && field.skip(f) {
			continue
		}

		current := f.Value(field.key)
		prompt := field.label
		if current != "" && !field.secret {
			prompt = fmt.Sprintf("%s [%s]", field.label, current)
		}
		fmt.Printf("  %s: ", prompt)

		raw, err := c.reader.ReadString('\n')
		if err != nil {
			return err
		}
		input := strings.TrimSpace(raw)
		if strings.EqualFold(input, "cancel") {
			return errCancelled
		}
		if input == "" {
			// Keep the current value (prefill on edit, prior pass on retry)
			continue
		}
		if field.key == form.FieldSystem {
			input = strings.ToUpper(input)
		}
		f.Set(field.key, input)
	}
	return nil
}
