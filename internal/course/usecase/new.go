package usecase

import (
	"student-productivity/internal/checklist"
	"student-productivity/internal/course"
	"student-productivity/internal/course/repository"
	"student-productivity/internal/deadline"
	"student-productivity/pkg/gcalendar"
	"student-productivity/pkg/log"
)

type implUseCase struct {
	repo       repository.Repository
	engine     *deadline.Engine
	checklist  checklist.Service
	calendar   gcalendar.Calendar
	calendarID string
	l          log.Logger
}

// New creates a course UseCase. calendar may be nil, in which case
// SyncCalendar returns course.ErrCalendarNotConfigured.
func New(
	repo repository.Repository,
	engine *deadline.Engine,
	checklist checklist.Service,
	calendar gcalendar.Calendar,
	calendarID string,
	l log.Logger,
) course.UseCase {
	return &implUseCase{
		repo:       repo,
		engine:     engine,
		checklist:  checklist,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}
