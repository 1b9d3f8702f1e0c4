package form

import "ums-console/internal/directory"

// Payload builds the multipart field list for submission.
//
// Create always carries the full field set; the PIN rides along only
// for a POS manager. Update never resends the immutable username,
// sends the password only when one was entered, and sends the PIN only
// when one was entered for a POS manager (blank means leave unchanged).
func Payload(f *Form) []directory.FormField {
	v := f.Values

	if f.Mode == ModeCreate {
		fields := []directory.FormField{
			{Name: "firstName", Value: v[FieldFirstName]},
			{Name: "middleName", Value: v[FieldMiddleName]},
			{Name: "lastName", Value: v[FieldLastName]},
			{Name: "suffix", Value: v[FieldSuffix]},
			{Name: "username", Value: v[FieldUsername]},
			{Name: "password", Value: v[FieldPassword]},
			{Name: "email", Value: v[FieldEmail]},
			{Name: "phoneNumber", Value: v[FieldPhone]},
			{Name: "userRole", Value: v[FieldRole]},
			{Name: "system", Value: v[FieldSystem]},
		}
		if f.PinActive() {
			fields = append(fields, directory.FormField{Name: "pin", Value: v[FieldPin]})
		}
		return fields
	}

	fields := []directory.FormField{
		{Name: "firstName", Value: v[FieldFirstName]},
		{Name: "middleName", Value: v[FieldMiddleName]},
		{Name: "lastName", Value: v[FieldLastName]},
		{Name: "suffix", Value: v[FieldSuffix]},
		{Name: "email", Value: v[FieldEmail]},
		{Name: "phoneNumber", Value: v[FieldPhone]},
		{Name: "userRole", Value: v[FieldRole]},
		{Name: "system", Value: v[FieldSystem]},
	}
	if v[FieldPassword] != "" {
		fields = append(fields, directory.FormField{Name: "password", Value: v[FieldPassword]})
	}
	if f.PinActive() && v[FieldPin] != "" {
		fields = append(fields, directory.FormField{Name: "pin", Value: v[FieldPin]})
	}
	return fields
}
