package http

import (
	"student-productivity/internal/user"
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/validation"
)

type handler struct {
	l        log.Logger
	uc       user.UseCase
	v        *validation.Validator
	reporter reporter.Reporter
}

// New creates the user HTTP handler and registers the password policy on
// the request validator.
func New(l log.Logger, uc user.UseCase, v *validation.Validator, rep reporter.Reporter) *handler {
	registerPasswordPolicy(v)
	return &handler{
		l:        l,
		uc:       uc,
		v:        v,
		reporter: rep,
	}
}
