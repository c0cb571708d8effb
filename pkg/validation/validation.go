package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	pkgErrors "student-productivity/pkg/errors"
)

const (
	NotBlankTag  = "notblank"
	notBlankText = "{0} must not be blank"

	DueDateTag    = "duedate"
	dueDateText   = "{0} must be a non-blank date of at most 128 characters"
	maxDueDateLen = 128

	KindTag  = "kind"
	kindText = "{0} must be one of assignment, exam, quiz, project, other"
)

// DeadlineKinds lists the accepted values for the kind tag.
var DeadlineKinds = []string{"assignment", "exam", "quiz", "project", "other"}

// Validator wraps a validator instance with its English translator.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New configures v with JSON field names, custom tags and English messages.
// Pass the gin binding engine to make request binding use the same rules.
func New(v *validator.Validate) (*Validator, error) {
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register default translations: %w", err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "uri"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	custom := []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{NotBlankTag, notBlank, notBlankText},
		{DueDateTag, dueDate, dueDateText},
		{KindTag, kind, kindText},
	}
	for _, c := range custom {
		if err := v.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, fmt.Errorf("register %s: %w", c.tag, err)
		}
		RegisterTranslation(v, trans, c.tag, c.text)
	}

	return &Validator{validate: v, trans: trans}, nil
}

// RegisterTranslation registers an English message for tag. "{0}" is the field name.
func RegisterTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(
		tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Engine returns the underlying validator.
func (v *Validator) Engine() *validator.Validate {
	return v.validate
}

// Translator returns the English translator.
func (v *Validator) Translator() ut.Translator {
	return v.trans
}

// Struct validates s.
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Translate maps each failing field to its English message. It returns nil
// when err is not a validation error.
func (v *Validator) Translate(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Translate(v.trans)
	}
	return out
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func dueDate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s != "" && len(s) <= maxDueDateLen
}

func kind(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for _, k := range DeadlineKinds {
		if s == k {
			return true
		}
	}
	return false
}

// BindError converts a request binding error into a pkg/errors value the
// response layer knows how to render.
func (v *Validator) BindError(err error) error {
	if err == nil {
		return nil
	}
	if fields := v.Translate(err); fields != nil {
		return pkgErrors.NewValidationError(fields)
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}
