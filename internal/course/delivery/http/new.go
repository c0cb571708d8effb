package http

import (
	"student-productivity/internal/course"
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/validation"
)

type handler struct {
	l        log.Logger
	uc       course.UseCase
	v        *validation.Validator
	reporter reporter.Reporter
}

// New creates the course HTTP handler.
func New(l log.Logger, uc course.UseCase, v *validation.Validator, rep reporter.Reporter) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		v:        v,
		reporter: rep,
	}
}
