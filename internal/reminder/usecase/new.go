package usecase

import (
	"student-productivity/internal/checklist"
	courseRepo "student-productivity/internal/course/repository"
	"student-productivity/internal/deadline"
	"student-productivity/internal/reminder"
	userRepo "student-productivity/internal/user/repository"
	"student-productivity/pkg/log"
	"student-productivity/pkg/mailer"
)

type implUseCase struct {
	users     userRepo.Repository
	courses   courseRepo.Repository
	engine    *deadline.Engine
	checklist checklist.Service
	mailer    mailer.Mailer
	l         log.Logger
}

// New creates a reminder UseCase.
func New(
	users userRepo.Repository,
	courses courseRepo.Repository,
	engine *deadline.Engine,
	checklist checklist.Service,
	m mailer.Mailer,
	l log.Logger,
) reminder.UseCase {
	return &implUseCase{
		users:     users,
		courses:   courses,
		engine:    engine,
		checklist: checklist,
		mailer:    m,
		l:         l,
	}
}
