package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbrTranslations "github.com/go-playground/validator/v10/translations/pt_BR"
)

var (
	cpfPattern     = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
	zipcodePattern = regexp.MustCompile(`^\d{5}-\d{3}$`)
	phonePattern   = regexp.MustCompile(`^\(\d{2}\) \d{5}-\d{4}$`)
)

var customValidations = map[string]struct {
	fn      validator.Func
	message string
}{
	"cpf":     {patternValidator(cpfPattern), "{0} deve estar no formato 000.000.000-00"},
	"zipcode": {patternValidator(zipcodePattern), "{0} deve estar no formato 00000-000"},
	"phone":   {patternValidator(phonePattern), "{0} deve estar no formato (00) 00000-0000"},
}

// FieldErrors maps a json field name to the message shown beneath it.
type FieldErrors map[string]string

// Messages overrides translated messages per field and tag: Messages[field][tag].
type Messages map[string]map[string]string

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	messages   Messages
}

func New(messages Messages) (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)
	trans, found := uni.GetTranslator("pt_BR")
	if !found {
		return nil, errors.New("translator pt_BR not found")
	}

	if err := ptbrTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register pt_BR translations failed: %w", err)
	}

	if err := registerCustom(v, trans); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   v,
		translator: trans,
		messages:   messages,
	}, nil
}

// Struct validates s and returns every failing field at once.
// A nil map means s is valid.
func (v *Validator) Struct(s any) (FieldErrors, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("validate struct failed: %w", err)
	}

	out := make(FieldErrors, len(verr))
	for _, ferr := range verr {
		out[ferr.Field()] = v.message(ferr)
	}

	return out, nil
}

func (v *Validator) message(ferr validator.FieldError) string {
	if byTag, ok := v.messages[ferr.Field()]; ok {
		if msg, ok := byTag[ferr.Tag()]; ok {
			return msg
		}
	}
	return ferr.Translate(v.translator)
}

// RegisterGinValidator installs the json tag names and the custom tags on gin's binding engine.
func RegisterGinValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground validator")
	}

	v.RegisterTagNameFunc(jsonTagName)
	for tag, custom := range customValidations {
		if err := v.RegisterValidation(tag, custom.fn); err != nil {
			return fmt.Errorf("register %s validator failed: %w", tag, err)
		}
	}

	return nil
}

func registerCustom(v *validator.Validate, trans ut.Translator) error {
	for tag, custom := range customValidations {
		if err := v.RegisterValidation(tag, custom.fn); err != nil {
			return fmt.Errorf("register %s validator failed: %w", tag, err)
		}

		message := custom.message
		err := v.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, translateField)
		if err != nil {
			return fmt.Errorf("register %s translation failed: %w", tag, err)
		}
	}

	return nil
}

func translateField(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}
	return t
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func patternValidator(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
