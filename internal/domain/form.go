package domain

import (
	"fmt"
	"strings"

	"github.com/vibe-gaming/cadastro/pkg/mask"
)

// Form is the per-session state of the registration form.
type Form struct {
	ID                       string            `json:"id"`
	Values                   RegistrationInput `json:"values"`
	Errors                   map[string]string `json:"errors,omitempty"`
	Notice                   string            `json:"notice,omitempty"`
	ShowPassword             bool              `json:"show_password"`
	ShowPasswordConfirmation bool              `json:"show_password_confirmation"`
} // @name Form

func NewForm(id string) *Form {
	return &Form{ID: id}
}

var fieldMasks = map[string]string{
	FieldPhone:   mask.Phone,
	FieldCPF:     mask.CPF,
	FieldZipcode: mask.Zipcode,
}

// SetField stores a user-typed value. Masked fields are formatted the way the
// masked inputs do it. Address and city only change through SetAddress.
func (f *Form) SetField(name string, value string) error {
	if pattern, ok := fieldMasks[name]; ok {
		value = mask.Apply(pattern, value)
	}

	switch name {
	case FieldName:
		f.Values.Name = value
	case FieldEmail:
		f.Values.Email = value
	case FieldPassword:
		f.Values.Password = value
	case FieldPasswordConfirmation:
		f.Values.PasswordConfirmation = value
	case FieldTerms:
		f.Values.Terms = parseCheckbox(value)
	case FieldPhone:
		f.Values.Phone = value
	case FieldCPF:
		f.Values.CPF = value
	case FieldZipcode:
		f.Values.Zipcode = value
	case FieldAddress, FieldCity:
		return fmt.Errorf("%s: %w", name, ErrFieldReadOnly)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownField)
	}

	return nil
}

// SetAddress overwrites the two lookup-filled fields.
func (f *Form) SetAddress(street string, city string) {
	f.Values.Address = street
	f.Values.City = city
}

func (f *Form) TogglePasswordVisibility() {
	f.ShowPassword = !f.ShowPassword
}

func (f *Form) TogglePasswordConfirmationVisibility() {
	f.ShowPasswordConfirmation = !f.ShowPasswordConfirmation
}

// ToggleVisibility flips the visibility flag of a password field.
func (f *Form) ToggleVisibility(field string) error {
	switch field {
	case FieldPassword:
		f.TogglePasswordVisibility()
	case FieldPasswordConfirmation:
		f.TogglePasswordConfirmationVisibility()
	default:
		return fmt.Errorf("%s: %w", field, ErrUnknownField)
	}
	return nil
}

// SetErrors replaces the field errors; nil clears them.
func (f *Form) SetErrors(errs map[string]string) {
	if len(errs) == 0 {
		f.Errors = nil
		return
	}
	f.Errors = make(map[string]string, len(errs))
	for k, v := range errs {
		f.Errors[k] = v
	}
}

func (f *Form) Error(field string) string {
	return f.Errors[field]
}

// Redacted returns a copy without the password values, for clients that
// keep their own copy of what was typed.
func (f *Form) Redacted() *Form {
	out := *f
	out.Values.Password = ""
	out.Values.PasswordConfirmation = ""
	return &out
}

// Reset empties every value after a successful submit. The visibility flags
// survive; only a new session starts masked again.
func (f *Form) Reset() {
	f.Values = RegistrationInput{}
	f.Errors = nil
	f.Notice = ""
	f.clearMaskedFields()
}

// clearMaskedFields blanks the masked inputs explicitly, they keep their
// formatted text through a generic reset in the browser.
func (f *Form) clearMaskedFields() {
	for field := range fieldMasks {
		_ = f.SetField(field, "")
	}
}

func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
