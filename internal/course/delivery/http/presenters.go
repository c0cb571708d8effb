package http

import (
	"student-productivity/internal/course"
	"student-productivity/internal/deadline"
	"student-productivity/pkg/response"
)

// --- Request DTOs ---

type courseReq struct {
	Name       string `json:"name"       binding:"required,notblank,max=120"`
	Code       string `json:"code"       binding:"max=32"`
	Instructor string `json:"instructor" binding:"max=120"`
}

func (r courseReq) validate() error { return nil }

func (r courseReq) toCreateInput() course.CreateCourseInput {
	return course.CreateCourseInput{Name: r.Name, Code: r.Code, Instructor: r.Instructor}
}

func (r courseReq) toUpdateInput(id string) course.UpdateCourseInput {
	return course.UpdateCourseInput{ID: id, Name: r.Name, Code: r.Code, Instructor: r.Instructor}
}

type createTaskReq struct {
	Title   string `json:"title"    binding:"required,notblank,max=200"`
	DueDate string `json:"due_date" binding:"omitempty,duedate"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput(courseID string) course.CreateTaskInput {
	return course.CreateTaskInput{CourseID: courseID, Title: r.Title, DueDate: r.DueDate}
}

// updateTaskReq is a partial update; an empty due_date clears the date.
type updateTaskReq struct {
	Title     *string `json:"title"     binding:"omitempty,notblank,max=200"`
	DueDate   *string `json:"due_date"  binding:"omitempty,max=128"`
	Completed *bool   `json:"completed"`
}

func (r updateTaskReq) validate() error {
	if r.Title == nil && r.DueDate == nil && r.Completed == nil {
		return errNothingToUpdate
	}
	return nil
}

func (r updateTaskReq) toInput(courseID, taskID string) course.UpdateTaskInput {
	return course.UpdateTaskInput{
		CourseID:  courseID,
		TaskID:    taskID,
		Title:     r.Title,
		DueDate:   r.DueDate,
		Completed: r.Completed,
	}
}

type importTasksReq struct {
	Markdown string `json:"markdown" binding:"required,notblank,max=65536"`
}

func (r importTasksReq) validate() error { return nil }

func (r importTasksReq) toInput(courseID string) course.ImportTasksInput {
	return course.ImportTasksInput{CourseID: courseID, Markdown: r.Markdown}
}

type createDeadlineReq struct {
	Title   string `json:"title"    binding:"required,notblank,max=200"`
	Kind    string `json:"kind"     binding:"omitempty,kind"`
	DueDate string `json:"due_date" binding:"required,duedate"`
}

func (r createDeadlineReq) validate() error { return nil }

func (r createDeadlineReq) toInput(courseID string) course.CreateDeadlineInput {
	return course.CreateDeadlineInput{CourseID: courseID, Title: r.Title, Kind: r.Kind, DueDate: r.DueDate}
}

type syncCalendarReq struct {
	CalendarID string `json:"calendar_id" binding:"max=256"`
}

func (r syncCalendarReq) validate() error { return nil }

func (r syncCalendarReq) toInput(courseID string) course.SyncCalendarInput {
	return course.SyncCalendarInput{CourseID: courseID, CalendarID: r.CalendarID}
}

// --- Response DTOs ---

type courseResp struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Code       string            `json:"code"`
	Instructor string            `json:"instructor"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

func newCourseResp(c course.Course) courseResp {
	return courseResp{
		ID:         c.ID,
		Name:       c.Name,
		Code:       c.Code,
		Instructor: c.Instructor,
		CreatedAt:  response.DateTime(c.CreatedAt),
		UpdatedAt:  response.DateTime(c.UpdatedAt),
	}
}

type listCoursesResp struct {
	Courses []courseResp `json:"courses"`
}

func (h *handler) newListCoursesResp(out course.ListCoursesOutput) listCoursesResp {
	resp := listCoursesResp{Courses: make([]courseResp, len(out.Courses))}
	for i, c := range out.Courses {
		resp.Courses[i] = newCourseResp(c)
	}
	return resp
}

type displayResp struct {
	Text      string `json:"text"`
	DaysUntil *int   `json:"days_until"`
	Overdue   bool   `json:"overdue"`
	Urgent    bool   `json:"urgent"`
}

func newDisplayResp(d deadline.Display) displayResp {
	resp := displayResp{Text: d.Text, Overdue: d.Overdue, Urgent: d.Urgent}
	if d.Valid {
		days := d.DaysUntil
		resp.DaysUntil = &days
	}
	return resp
}

type courseStatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

func newCourseStatusResp(s deadline.CourseStatus) courseStatusResp {
	return courseStatusResp{Status: s.Status, Message: s.Message, Color: string(s.Color)}
}

type taskResp struct {
	ID        string       `json:"id"`
	CourseID  string       `json:"course_id"`
	Title     string       `json:"title"`
	DueDate   string       `json:"due_date"`
	Completed bool         `json:"completed"`
	Display   *displayResp `json:"display,omitempty"`
}

func newTaskResp(t course.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		CourseID:  t.CourseID,
		Title:     t.Title,
		DueDate:   t.DueDate,
		Completed: t.Completed,
	}
}

type deadlineResp struct {
	ID       string       `json:"id"`
	CourseID string       `json:"course_id"`
	Title    string       `json:"title"`
	Kind     string       `json:"kind"`
	DueDate  string       `json:"due_date"`
	Display  *displayResp `json:"display,omitempty"`
}

func newDeadlineResp(d course.Deadline) deadlineResp {
	return deadlineResp{
		ID:       d.ID,
		CourseID: d.CourseID,
		Title:    d.Title,
		Kind:     d.Kind,
		DueDate:  d.DueDate,
	}
}

func newDeadlineRespPtr(d *course.Deadline) *deadlineResp {
	if d == nil {
		return nil
	}
	resp := newDeadlineResp(*d)
	return &resp
}

type overviewResp struct {
	Course          courseResp       `json:"course"`
	Tasks           []taskResp       `json:"tasks"`
	Deadlines       []deadlineResp   `json:"deadlines"`
	CompletedTasks  int              `json:"completed_tasks"`
	Progress        float64          `json:"progress"`
	NextDeadline    *deadlineResp    `json:"next_deadline"`
	ClosestDeadline *deadlineResp    `json:"closest_deadline"`
	IsFinished      bool             `json:"is_finished"`
	HasUpcoming     bool             `json:"has_upcoming"`
	NextDisplay     displayResp      `json:"next_display"`
	Status          courseStatusResp `json:"status"`
}

func (h *handler) newOverviewResp(out course.Overview) overviewResp {
	resp := overviewResp{
		Course:          newCourseResp(out.Course),
		Tasks:           make([]taskResp, len(out.Tasks)),
		Deadlines:       make([]deadlineResp, len(out.Deadlines)),
		CompletedTasks:  out.CompletedTasks,
		Progress:        out.Progress,
		NextDeadline:    newDeadlineRespPtr(out.DeadlineStatus.Next),
		ClosestDeadline: newDeadlineRespPtr(out.DeadlineStatus.Closest),
		IsFinished:      out.DeadlineStatus.IsFinished,
		HasUpcoming:     out.DeadlineStatus.HasUpcoming,
		NextDisplay:     newDisplayResp(out.NextDisplay),
		Status:          newCourseStatusResp(out.CourseStatus),
	}
	for i, tv := range out.Tasks {
		resp.Tasks[i] = newTaskResp(tv.Task)
		d := newDisplayResp(tv.Display)
		resp.Tasks[i].Display = &d
	}
	for i, dv := range out.Deadlines {
		resp.Deadlines[i] = newDeadlineResp(dv.Deadline)
		d := newDisplayResp(dv.Display)
		resp.Deadlines[i].Display = &d
	}
	return resp
}

type importTasksResp struct {
	Parsed int        `json:"parsed"`
	Tasks  []taskResp `json:"tasks"`
}

func (h *handler) newImportTasksResp(out course.ImportTasksOutput) importTasksResp {
	resp := importTasksResp{Parsed: out.Parsed, Tasks: make([]taskResp, len(out.Tasks))}
	for i, t := range out.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	return resp
}

type calendarEventResp struct {
	DeadlineID string `json:"deadline_id"`
	EventID    string `json:"event_id"`
	Link       string `json:"link"`
	Date       string `json:"date"`
}

type syncCalendarResp struct {
	Created []calendarEventResp `json:"created"`
	Skipped int                 `json:"skipped"`
}

func (h *handler) newSyncCalendarResp(out course.SyncCalendarOutput) syncCalendarResp {
	resp := syncCalendarResp{Created: make([]calendarEventResp, len(out.Created)), Skipped: out.Skipped}
	for i, ev := range out.Created {
		resp.Created[i] = calendarEventResp{DeadlineID: ev.DeadlineID, EventID: ev.EventID, Link: ev.Link, Date: ev.Date}
	}
	return resp
}

type dashboardItemResp struct {
	Course       courseResp       `json:"course"`
	Progress     float64          `json:"progress"`
	TasksCount   int              `json:"tasks_count"`
	NextDeadline *deadlineResp    `json:"next_deadline"`
	NextDisplay  displayResp      `json:"next_display"`
	Status       courseStatusResp `json:"status"`
}

type dashboardResp struct {
	Courses []dashboardItemResp `json:"courses"`
	Urgent  int                 `json:"urgent"`
	Overdue int                 `json:"overdue"`
}

func (h *handler) newDashboardResp(out course.DashboardOutput) dashboardResp {
	resp := dashboardResp{
		Courses: make([]dashboardItemResp, len(out.Items)),
		Urgent:  out.Urgent,
		Overdue: out.Overdue,
	}
	for i, item := range out.Items {
		resp.Courses[i] = dashboardItemResp{
			Course:       newCourseResp(item.Course),
			Progress:     item.Progress,
			TasksCount:   item.TasksCount,
			NextDeadline: newDeadlineRespPtr(item.Next),
			NextDisplay:  newDisplayResp(item.NextDisplay),
			Status:       newCourseStatusResp(item.CourseStatus),
		}
	}
	return resp
}
