package form

import (
	"regexp"

	"ums-console/internal/directory"
)

// MinPasswordLength matches the auth service's own floor.
const MinPasswordLength = 12

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// Rule is one predicate+message pair evaluated against a form
// snapshot. Rules are independent; all failures are collected rather
// than short-circuited. Applies gates a rule on other field values
// (the PIN rule, the mismatch rule after the length rule passes).
type Rule struct {
	Field   string
	Message string
	Applies func(v map[string]string) bool
	Valid   func(v map[string]string) bool
}

func pinActive(v map[string]string) bool {
	return v[FieldRole] == directory.RoleManager && v[FieldSystem] == directory.SystemPOS
}

func required(field, message string) Rule {
	return Rule{
		Field:   field,
		Message: message,
		Valid:   func(v map[string]string) bool { return v[field] != "" },
	}
}

// CreateRules is the validation contract of the add flow.
func CreateRules() []Rule {
	return []Rule{
		{
			Field:   FieldPassword,
			Message: "Password must be at least 12 characters.",
			Valid:   func(v map[string]string) bool { return len(v[FieldPassword]) >= MinPasswordLength },
		},
		{
			Field:   FieldConfirmPassword,
			Message: "Passwords do not match!",
			Applies: func(v map[string]string) bool { return len(v[FieldPassword]) >= MinPasswordLength },
			Valid:   func(v map[string]string) bool { return v[FieldPassword] == v[FieldConfirmPassword] },
		},
		{
			Field:   FieldPin,
			Message: "A 4-digit PIN is required for POS Managers.",
			Applies: pinActive,
			Valid:   func(v map[string]string) bool { return pinPattern.MatchString(v[FieldPin]) },
		},
		required(FieldFirstName, "First name is required."),
		required(FieldLastName, "Last name is required."),
		required(FieldUsername, "Username is required."),
		required(FieldEmail, "Email is required."),
		required(FieldRole, "Role is required."),
		required(FieldSystem, "System is required."),
	}
}

// EditRules is the validation contract of the edit flow: password and
// PIN become optional and are validated only when entered. Username is
// immutable after creation, so it is not required here.
func EditRules() []Rule {
	return []Rule{
		{
			Field:   FieldPassword,
			Message: "New password must be at least 12 characters.",
			Applies: func(v map[string]string) bool { return v[FieldPassword] != "" },
			Valid:   func(v map[string]string) bool { return len(v[FieldPassword]) >= MinPasswordLength },
		},
		{
			Field:   FieldConfirmPassword,
			Message: "Passwords do not match!",
			Applies: func(v map[string]string) bool {
				return v[FieldPassword] != "" && len(v[FieldPassword]) >= MinPasswordLength
			},
			Valid: func(v map[string]string) bool { return v[FieldPassword] == v[FieldConfirmPassword] },
		},
		{
			Field:   FieldPin,
			Message: "New PIN must be 4 digits.",
			Applies: func(v map[string]string) bool { return pinActive(v) && v[FieldPin] != "" },
			Valid:   func(v map[string]string) bool { return pinPattern.MatchString(v[FieldPin]) },
		},
		required(FieldFirstName, "First name is required."),
		required(FieldLastName, "Last name is required."),
		required(FieldEmail, "Email is required."),
		required(FieldRole, "Role is required."),
		required(FieldSystem, "System is required."),
	}
}

// Validate evaluates every applicable rule against the form's current
// values and returns all field errors. The first failing rule per
// field wins; later rules for that field do not overwrite it.
func Validate(f *Form) map[string]string {
	var rules []Rule
	if f.Mode == ModeCreate {
		rules = CreateRules()
	} else {
		rules = EditRules()
	}

	errs := map[string]string{}
	for _, rule := range rules {
		if rule.Applies != nil && !rule.Applies(f.Values) {
			continue
		}
		if _, taken := errs[rule.Field]; taken {
			continue
		}
		if !rule.Valid(f.Values) {
			errs[rule.Field] = rule.Message
		}
	}
	return errs
}
