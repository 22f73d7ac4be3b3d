// Package web serves the registration form as server-rendered HTML.
package web

import (
	"embed"
	"html/template"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

//go:embed templates/*.html
var templateFiles embed.FS

const formTemplate = "form.html"

const registeredNotice = "Cadastro realizado com sucesso!"

// FieldErrorDisplay renders the message slot under a form control. The
// container keeps its height when empty so the layout does not shift.
func FieldErrorDisplay(message string) template.HTML {
	if message == "" {
		return `<div class="field-error"></div>`
	}
	return template.HTML(`<div class="field-error"><p class="field-error__message">` +
		template.HTMLEscapeString(message) + `</p></div>`)
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"fieldError": FieldErrorDisplay}).
		ParseFS(templateFiles, "templates/*.html")
}

type page struct {
	Form       *domain.Form
	Registered bool
}

func passwordType(visible bool) string {
	if visible {
		return "text"
	}
	return "password"
}

func (p page) PasswordType() string {
	return passwordType(p.Form.ShowPassword)
}

func (p page) PasswordConfirmationType() string {
	return passwordType(p.Form.ShowPasswordConfirmation)
}

func (p page) Notice() string {
	if p.Registered {
		return registeredNotice
	}
	return p.Form.Notice
}
