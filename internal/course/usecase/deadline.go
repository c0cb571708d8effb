package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
	"student-productivity/internal/model"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/gcalendar"
)

func (uc *implUseCase) CreateDeadline(ctx context.Context, sc model.Scope, input course.CreateDeadlineInput) (course.Deadline, error) {
	if _, err := uc.getCourse(ctx, sc, input.CourseID); err != nil {
		return course.Deadline{}, err
	}

	d, err := uc.repo.CreateDeadline(ctx, repo.CreateDeadlineOptions{
		CourseID: input.CourseID,
		Title:    strings.TrimSpace(input.Title),
		Kind:     normalizeKind(input.Kind),
		DueDate:  uc.normalizeDueDate(input.DueDate),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateDeadline CreateDeadline: %v", err)
		return course.Deadline{}, err
	}
	return d, nil
}

func (uc *implUseCase) DeleteDeadline(ctx context.Context, sc model.Scope, courseID, deadlineID string) error {
	if _, err := uc.getCourse(ctx, sc, courseID); err != nil {
		return err
	}
	d, err := uc.repo.GetOneDeadline(ctx, repo.GetOneDeadlineOptions{ID: deadlineID, CourseID: courseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteDeadline GetOneDeadline: %v", err)
		return err
	}
	if d.ID == "" {
		return course.ErrDeadlineNotFound
	}
	if err := uc.repo.DeleteDeadline(ctx, deadlineID); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteDeadline DeleteDeadline: %v", err)
		return err
	}
	return nil
}

// SyncCalendar exports the course's upcoming deadlines as all-day events.
// A deadline whose summary already exists on the same day is skipped, so
// repeated syncs do not duplicate events.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope, input course.SyncCalendarInput) (course.SyncCalendarOutput, error) {
	if uc.calendar == nil {
		return course.SyncCalendarOutput{}, course.ErrCalendarNotConfigured
	}

	c, err := uc.getCourse(ctx, sc, input.CourseID)
	if err != nil {
		return course.SyncCalendarOutput{}, err
	}
	deadlines, err := uc.repo.ListDeadlines(ctx, repo.ListDeadlinesOptions{CourseIDs: []string{c.ID}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncCalendar ListDeadlines: %v", err)
		return course.SyncCalendarOutput{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	parser := uc.engine.Parser()
	today := parser.Today()

	type pending struct {
		deadline course.Deadline
		day      time.Time
		date     string
	}
	var todo []pending
	var out course.SyncCalendarOutput
	last := today
	for _, d := range deadlines {
		due, err := parser.ParseFlexible(d.DueDate)
		if err != nil || parser.StartOfDay(due).Before(today) {
			out.Skipped++
			continue
		}
		day := parser.StartOfDay(due)
		if day.After(last) {
			last = day
		}
		todo = append(todo, pending{deadline: d, day: day, date: day.Format(datemath.DateLayout)})
	}
	if len(todo) == 0 {
		return out, nil
	}

	existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    today,
		TimeMax:    last.AddDate(0, 0, 1),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncCalendar ListEvents: %v", err)
		return course.SyncCalendarOutput{}, fmt.Errorf("list calendar events: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, ev := range existing {
		seen[ev.Date+"|"+ev.Summary] = true
	}

	for _, p := range todo {
		summary := fmt.Sprintf("%s: %s", label(c), p.deadline.Title)
		if seen[p.date+"|"+summary] {
			out.Skipped++
			continue
		}

		ev, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
			CalendarID:  calendarID,
			Summary:     summary,
			Description: fmt.Sprintf("%s (%s) for %s", p.deadline.Title, p.deadline.Kind, c.Name),
			Date:        p.day,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.SyncCalendar CreateAllDayEvent: %v", err)
			return out, fmt.Errorf("create calendar event: %w", err)
		}
		seen[p.date+"|"+summary] = true
		out.Created = append(out.Created, course.CalendarEvent{
			DeadlineID: p.deadline.ID,
			EventID:    ev.ID,
			Link:       ev.HtmlLink,
			Date:       p.date,
		})
	}

	uc.l.Infof(ctx, "uc.SyncCalendar: course %s created=%d skipped=%d", c.ID, len(out.Created), out.Skipped)
	return out, nil
}
