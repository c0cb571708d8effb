package http

import (
	"student-productivity/internal/deadline"
	"student-productivity/pkg/log"
	"student-productivity/pkg/validation"
)

// handler exposes the pure deadline engine; it has no use case or storage.
type handler struct {
	l      log.Logger
	engine *deadline.Engine
	v      *validation.Validator
}

// New creates the deadline HTTP handler.
func New(l log.Logger, engine *deadline.Engine, v *validation.Validator) *handler {
	return &handler{
		l:      l,
		engine: engine,
		v:      v,
	}
}
