package form

import "ums-console/internal/directory"

// Mode selects which validation contract applies.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Phase tracks the modal lifecycle.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpen
	PhaseValidating
	PhaseSubmitting
)

// Field keys. One flat structure covers both flows; which fields are
// required or even sent is derived from the current values, never by
// mutating the field set.
const (
	FieldFirstName       = "firstName"
	FieldMiddleName      = "middleName"
	FieldLastName        = "lastName"
	FieldSuffix          = "suffix"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldRole            = "role"
	FieldSystem          = "system"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldPin             = "pin"
)

// Form is the ephemeral state behind one open modal.
type Form struct {
	Mode     Mode
	Phase    Phase
	TargetID int
	Values   map[string]string
	Errors   map[string]string
}

func New(mode Mode) *Form {
	return &Form{
		Mode:   mode,
		Phase:  PhaseClosed,
		Values: blankValues(),
		Errors: map[string]string{},
	}
}

func blankValues() map[string]string {
	return map[string]string{
		FieldFirstName:       "",
		FieldMiddleName:      "",
		FieldLastName:        "",
		FieldSuffix:          "",
		FieldUsername:        "",
		FieldEmail:           "",
		FieldPhone:           "",
		FieldRole:            "",
		FieldSystem:          "",
		FieldPassword:        "",
		FieldConfirmPassword: "",
		FieldPin:             "",
	}
}

// OpenBlank starts the add flow with every field empty.
func (f *Form) OpenBlank() {
	f.TargetID = 0
	f.Values = blankValues()
	f.Errors = map[string]string{}
	f.Phase = PhaseOpen
}

// OpenFor starts the edit flow pre-populated from the target record.
// Password and PIN always start blank; the N/A display sentinel on the
// phone clears back to empty.
func (f *Form) OpenFor(emp directory.Employee) {
	phone := emp.PhoneNumber
	if phone == directory.NotAvailable {
		phone = ""
	}
	system := emp.System
	if system == directory.NotAvailable {
		system = ""
	}

	f.TargetID = emp.ID
	f.Values = blankValues()
	f.Values[FieldFirstName] = emp.FirstName
	f.Values[FieldMiddleName] = emp.MiddleName
	f.Values[FieldLastName] = emp.LastName
	f.Values[FieldSuffix] = emp.Suffix
	f.Values[FieldUsername] = emp.Username
	f.Values[FieldEmail] = emp.Email
	f.Values[FieldPhone] = phone
	f.Values[FieldRole] = emp.Role
	f.Values[FieldSystem] = system
	f.Errors = map[string]string{}
	f.Phase = PhaseOpen
}

// Set records a field edit while the form is open.
func (f *Form) Set(field, value string) {
	if f.Phase != PhaseOpen {
		return
	}
	f.Values[field] = value
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	return f.Values[field]
}

// Close discards all entered data and errors.
func (f *Form) Close() {
	f.TargetID = 0
	f.Values = blankValues()
	f.Errors = map[string]string{}
	f.Phase = PhaseClosed
}

// PinActive reports whether the PIN field is semantically live: only a
// POS manager carries an operational PIN. Outside that combination the
// field is inert regardless of its contents.
func (f *Form) PinActive() bool {
	return f.Values[FieldRole] == directory.RoleManager && f.Values[FieldSystem] == directory.SystemPOS
}
