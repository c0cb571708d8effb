package usecase

import (
	"context"

	"student-productivity/internal/course"
	courseRepo "student-productivity/internal/course/repository"
	"student-productivity/internal/deadline"
	"student-productivity/internal/reminder"
	"student-productivity/internal/user"
)

func (uc *implUseCase) BuildDigest(ctx context.Context, u user.User) (reminder.Digest, error) {
	digest := reminder.Digest{User: u}

	courses, err := uc.courses.ListCourses(ctx, courseRepo.ListCoursesOptions{UserID: u.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BuildDigest ListCourses: %v", err)
		return digest, err
	}
	if len(courses) == 0 {
		return digest, nil
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	tasks, err := uc.courses.ListTasks(ctx, courseRepo.ListTasksOptions{CourseIDs: ids, IncompleteOnly: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BuildDigest ListTasks: %v", err)
		return digest, err
	}
	deadlines, err := uc.courses.ListDeadlines(ctx, courseRepo.ListDeadlinesOptions{CourseIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BuildDigest ListDeadlines: %v", err)
		return digest, err
	}

	selectItems(uc.engine, &digest, courses, tasks, deadlines)
	return digest, nil
}

// selectItems keeps the tasks and deadlines whose display is overdue or
// urgent. Undated and unparsable entries never qualify.
func selectItems(e *deadline.Engine, digest *reminder.Digest, courses []course.Course, tasks []course.Task, deadlines []course.Deadline) {
	for _, c := range courses {
		name := courseLabel(c)
		for _, t := range tasks {
			if t.CourseID != c.ID || t.Completed {
				continue
			}
			add(digest, reminder.Item{Course: name, Title: t.Title, Kind: reminder.KindTask, DueDate: t.DueDate, Display: e.Describe(t)})
		}
		for _, d := range deadlines {
			if d.CourseID != c.ID {
				continue
			}
			add(digest, reminder.Item{Course: name, Title: d.Title, Kind: d.Kind, DueDate: d.DueDate, Display: e.Describe(d)})
		}
	}
}

func add(digest *reminder.Digest, it reminder.Item) {
	switch {
	case it.Display.Overdue:
		digest.Overdue = append(digest.Overdue, it)
	case it.Display.Urgent:
		digest.Urgent = append(digest.Urgent, it)
	}
}

func courseLabel(c course.Course) string {
	if c.Code != "" {
		return c.Code
	}
	return c.Name
}
