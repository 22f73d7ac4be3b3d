package domain

import "github.com/vibe-gaming/cadastro/pkg/validator"

// Field names as they travel on the wire and in form posts.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldTerms                = "terms"
	FieldPhone                = "phone"
	FieldCPF                  = "cpf"
	FieldZipcode              = "zipcode"
	FieldAddress              = "address"
	FieldCity                 = "city"
)

// FieldOrder lists the fields in the order the form shows them.
var FieldOrder = []string{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldPasswordConfirmation,
	FieldPhone,
	FieldCPF,
	FieldZipcode,
	FieldAddress,
	FieldCity,
	FieldTerms,
}

// Editable reports whether the user types field directly.
func Editable(field string) bool {
	switch field {
	case FieldAddress, FieldCity:
		return false
	}
	for _, f := range FieldOrder {
		if f == field {
			return true
		}
	}
	return false
}

// RegistrationInput is the field set sent to the registration endpoint.
type RegistrationInput struct {
	Name                 string `json:"name" validate:"required,min=2,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=8,max=255,eqfield=Password"`
	Terms                bool   `json:"terms" validate:"required"`
	Phone                string `json:"phone" validate:"required,max=20,phone"`
	CPF                  string `json:"cpf" validate:"required,max=14,cpf"`
	Zipcode              string `json:"zipcode" validate:"required,max=9,zipcode"`
	Address              string `json:"address" validate:"required,max=255"`
	City                 string `json:"city" validate:"required,max=255"`
} // @name RegistrationInput

const requiredMessage = "Este campo é obrigatório."

// RegistrationMessages are the messages shown beneath each field.
var RegistrationMessages = validator.Messages{
	FieldName: {
		"required": requiredMessage,
		"min":      "O nome deve ter pelo menos 2 caracteres.",
		"max":      "O nome deve ter no máximo 255 caracteres.",
	},
	FieldEmail: {
		"required": requiredMessage,
		"email":    "Informe um e-mail válido.",
		"max":      "O e-mail deve ter no máximo 255 caracteres.",
	},
	FieldPassword: {
		"required": requiredMessage,
		"min":      "A senha deve ter pelo menos 8 caracteres.",
		"max":      "A senha deve ter no máximo 255 caracteres.",
	},
	FieldPasswordConfirmation: {
		"required": requiredMessage,
		"min":      "A senha deve ter pelo menos 8 caracteres.",
		"max":      "A senha deve ter no máximo 255 caracteres.",
		"eqfield":  "As senhas precisam ser iguais",
	},
	FieldTerms: {
		"required": "Aceite os termos antes de continuar.",
	},
	FieldPhone: {
		"required": requiredMessage,
		"max":      "O telefone deve ter no máximo 20 caracteres.",
		"phone":    "O telefone deve estar no formato (00) 00000-0000",
	},
	FieldCPF: {
		"required": requiredMessage,
		"max":      "O CPF deve ter no máximo 14 caracteres.",
		"cpf":      "O CPF deve estar no formato 000.000.000-00",
	},
	FieldZipcode: {
		"required": requiredMessage,
		"max":      "O CEP deve ter no máximo 9 caracteres.",
		"zipcode":  "O CEP deve estar no formato 00000-000",
	},
	FieldAddress: {
		"required": requiredMessage,
		"max":      "O endereço deve ter no máximo 255 caracteres.",
	},
	FieldCity: {
		"required": requiredMessage,
		"max":      "A cidade deve ter no máximo 255 caracteres.",
	},
}
