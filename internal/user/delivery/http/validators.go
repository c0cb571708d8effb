package http

import (
	"github.com/go-playground/validator/v10"

	"student-productivity/internal/user"
	"student-productivity/pkg/validation"
)

func registerPasswordPolicy(v *validation.Validator) {
	for tag, text := range user.PasswordPolicyTexts {
		validation.RegisterTranslation(v.Engine(), v.Translator(), tag, text)
	}
	v.Engine().RegisterStructValidation(registerStructValidation, registerReq{})
}

// registerStructValidation reports the first password policy violation on
// the password field.
func registerStructValidation(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(registerReq)
	if !ok || req.Password == "" {
		return
	}
	if tag := user.CheckPassword(req.Password, req.Username, req.Email); tag != "" {
		sl.ReportError(req.Password, "password", "Password", tag, "")
	}
}
