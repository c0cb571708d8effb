package usecase

import (
	"context"

	"student-productivity/internal/course"
	repo "student-productivity/internal/course/repository"
	"student-productivity/internal/deadline"
	"student-productivity/internal/model"
)

// Dashboard summarizes every course of the caller. Urgent and Overdue count
// deadlines plus incomplete tasks across all courses.
func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (course.DashboardOutput, error) {
	courses, err := uc.repo.ListCourses(ctx, repo.ListCoursesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard ListCourses: %v", err)
		return course.DashboardOutput{}, err
	}
	if len(courses) == 0 {
		return course.DashboardOutput{Items: []course.DashboardItem{}}, nil
	}

	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{CourseIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard ListTasks: %v", err)
		return course.DashboardOutput{}, err
	}
	deadlines, err := uc.repo.ListDeadlines(ctx, repo.ListDeadlinesOptions{CourseIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dashboard ListDeadlines: %v", err)
		return course.DashboardOutput{}, err
	}

	tasksByCourse := make(map[string][]course.Task, len(courses))
	for _, t := range tasks {
		tasksByCourse[t.CourseID] = append(tasksByCourse[t.CourseID], t)
	}
	deadlinesByCourse := make(map[string][]course.Deadline, len(courses))
	for _, d := range deadlines {
		deadlinesByCourse[d.CourseID] = append(deadlinesByCourse[d.CourseID], d)
	}

	out := course.DashboardOutput{Items: make([]course.DashboardItem, len(courses))}
	for i, c := range courses {
		ct := tasksByCourse[c.ID]
		cd := deadlinesByCourse[c.ID]

		_, pct := progress(ct)
		st := deadline.GetStatus(uc.engine, cd)
		item := course.DashboardItem{
			Course:       c,
			Progress:     pct,
			TasksCount:   len(ct),
			NextDisplay:  deadline.DescribeNext(uc.engine, st.Next),
			CourseStatus: deadline.GetCourseStatus(uc.engine, pct, cd, len(ct)),
		}
		if st.Next != nil {
			next := *st.Next
			item.Next = &next
		}
		out.Items[i] = item

		for _, d := range cd {
			uc.count(&out, uc.engine.Describe(d))
		}
		for _, t := range ct {
			if !t.Completed {
				uc.count(&out, uc.engine.Describe(t))
			}
		}
	}
	return out, nil
}

func (uc *implUseCase) count(out *course.DashboardOutput, d deadline.Display) {
	switch {
	case d.Overdue:
		out.Overdue++
	case d.Urgent:
		out.Urgent++
	}
}
