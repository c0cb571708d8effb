package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"student-productivity/internal/course"
	"student-productivity/internal/deadline"
	"student-productivity/internal/middleware"
	"student-productivity/internal/model"
	"student-productivity/pkg/log"
	"student-productivity/pkg/reporter"
	"student-productivity/pkg/scope"
	"student-productivity/pkg/validation"
)

type mockUseCase struct {
	err error

	lastScope      model.Scope
	lastCreate     course.CreateCourseInput
	lastUpdateTask course.UpdateTaskInput
	lastDeadline   course.CreateDeadlineInput
	lastSync       course.SyncCalendarInput
	lastImport     course.ImportTasksInput
}

func (m *mockUseCase) CreateCourse(ctx context.Context, sc model.Scope, input course.CreateCourseInput) (course.Course, error) {
	m.lastScope, m.lastCreate = sc, input
	return course.Course{ID: "c-1", UserID: sc.UserID, Name: input.Name, Code: input.Code}, m.err
}

func (m *mockUseCase) ListCourses(ctx context.Context, sc model.Scope) (course.ListCoursesOutput, error) {
	return course.ListCoursesOutput{Courses: []course.Course{{ID: "c-1", Name: "Algorithms"}}}, m.err
}

func (m *mockUseCase) Overview(ctx context.Context, sc model.Scope, id string) (course.Overview, error) {
	if m.err != nil {
		return course.Overview{}, m.err
	}
	mid := course.Deadline{ID: "d-1", CourseID: id, Title: "Midterm", Kind: "exam", DueDate: "2026-10-22"}
	return course.Overview{
		Course:         course.Course{ID: id, Name: "Algorithms"},
		Tasks:          []course.TaskView{{Task: course.Task{ID: "t-1", Title: "Read"}, Display: deadline.Display{Text: "No date"}}},
		Deadlines:      []course.DeadlineView{{Deadline: mid, Display: deadline.Display{Text: "Due in 3 days", DaysUntil: 3, Valid: true}}},
		Progress:       50,
		DeadlineStatus: deadline.Status[course.Deadline]{Next: &mid, Closest: &mid, HasUpcoming: true},
		NextDisplay:    deadline.Display{Text: "Due in 3 days", DaysUntil: 3, Valid: true},
		CourseStatus:   deadline.CourseStatus{Status: "Needs Attention", Message: "Exam in 3 days", Color: deadline.ColorYellow},
	}, nil
}

func (m *mockUseCase) UpdateCourse(ctx context.Context, sc model.Scope, input course.UpdateCourseInput) (course.Course, error) {
	return course.Course{ID: input.ID, Name: input.Name}, m.err
}

func (m *mockUseCase) DeleteCourse(ctx context.Context, sc model.Scope, id string) error {
	return m.err
}

func (m *mockUseCase) CreateTask(ctx context.Context, sc model.Scope, input course.CreateTaskInput) (course.Task, error) {
	return course.Task{ID: "t-1", CourseID: input.CourseID, Title: input.Title, DueDate: input.DueDate}, m.err
}

func (m *mockUseCase) UpdateTask(ctx context.Context, sc model.Scope, input course.UpdateTaskInput) (course.Task, error) {
	m.lastUpdateTask = input
	return course.Task{ID: input.TaskID, CourseID: input.CourseID}, m.err
}

func (m *mockUseCase) DeleteTask(ctx context.Context, sc model.Scope, courseID, taskID string) error {
	return m.err
}

func (m *mockUseCase) ImportTasks(ctx context.Context, sc model.Scope, input course.ImportTasksInput) (course.ImportTasksOutput, error) {
	m.lastImport = input
	return course.ImportTasksOutput{Parsed: 1, Tasks: []course.Task{{ID: "t-1", Title: "Read"}}}, m.err
}

func (m *mockUseCase) CreateDeadline(ctx context.Context, sc model.Scope, input course.CreateDeadlineInput) (course.Deadline, error) {
	m.lastDeadline = input
	return course.Deadline{ID: "d-1", CourseID: input.CourseID, Title: input.Title, Kind: input.Kind, DueDate: input.DueDate}, m.err
}

func (m *mockUseCase) DeleteDeadline(ctx context.Context, sc model.Scope, courseID, deadlineID string) error {
	return m.err
}

func (m *mockUseCase) SyncCalendar(ctx context.Context, sc model.Scope, input course.SyncCalendarInput) (course.SyncCalendarOutput, error) {
	m.lastSync = input
	return course.SyncCalendarOutput{Created: []course.CalendarEvent{{DeadlineID: "d-1", EventID: "ev-1", Date: "2026-10-22"}}}, m.err
}

func (m *mockUseCase) Dashboard(ctx context.Context, sc model.Scope) (course.DashboardOutput, error) {
	return course.DashboardOutput{
		Items:  []course.DashboardItem{{Course: course.Course{ID: "c-1"}, Progress: 25, TasksCount: 4, NextDisplay: deadline.Display{Text: "No deadlines"}}},
		Urgent: 2,
	}, m.err
}

type testResp struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

func setupRouter(t *testing.T, uc course.UseCase) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("gin binding engine is not validator/v10")
	}
	v, err := validation.New(engine)
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}

	jwtManager, _ := scope.New("secret", time.Hour)
	mw := middleware.New(log.NewNop(), jwtManager, reporter.Nop(), middleware.Config{})
	token, _, err := jwtManager.CreateToken("u-1", "ada")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, v, reporter.Nop()), mw)
	return r, token
}

func doJSON(r http.Handler, method, path string, body any, token string) (*httptest.ResponseRecorder, testResp) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp testResp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestRoutesRequireAuth(t *testing.T) {
	r, _ := setupRouter(t, &mockUseCase{})
	for _, path := range []string{"/api/v1/courses", "/api/v1/courses/c-1", "/api/v1/dashboard"} {
		w, _ := doJSON(r, http.MethodGet, path, nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d", path, w.Code)
		}
	}
}

func TestCreateCourse(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		ucErr      error
		wantStatus int
		wantField  string
	}{
		{name: "success", body: map[string]string{"name": "Algorithms", "code": "CS301"}, wantStatus: http.StatusOK},
		{name: "blank name", body: map[string]string{"name": "   "}, wantStatus: http.StatusBadRequest, wantField: "name"},
		{name: "duplicate code", body: map[string]string{"name": "Algorithms", "code": "CS301"}, ucErr: course.ErrDuplicateCode, wantStatus: http.StatusConflict},
		{name: "unexpected error", body: map[string]string{"name": "Algorithms"}, ucErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			r, token := setupRouter(t, uc)
			w, resp := doJSON(r, http.MethodPost, "/api/v1/courses", tt.body, token)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantField != "" && resp.Errors[tt.wantField] == "" {
				t.Errorf("expected error for field %q, got %v", tt.wantField, resp.Errors)
			}
			if tt.wantStatus == http.StatusOK && uc.lastScope.UserID != "u-1" {
				t.Errorf("scope = %+v", uc.lastScope)
			}
		})
	}
}

func TestGetCourse(t *testing.T) {
	r, token := setupRouter(t, &mockUseCase{})
	w, resp := doJSON(r, http.MethodGet, "/api/v1/courses/c-9", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var data struct {
		Course struct {
			ID string `json:"id"`
		} `json:"course"`
		NextDeadline *struct {
			Title string `json:"title"`
		} `json:"next_deadline"`
		NextDisplay struct {
			Text      string `json:"text"`
			DaysUntil *int   `json:"days_until"`
		} `json:"next_display"`
		Tasks []struct {
			Display struct {
				DaysUntil *int `json:"days_until"`
			} `json:"display"`
		} `json:"tasks"`
		Status struct {
			Color string `json:"color"`
		} `json:"status"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.Course.ID != "c-9" || data.NextDeadline == nil || data.NextDeadline.Title != "Midterm" {
		t.Errorf("unexpected overview: %s", resp.Data)
	}
	if data.NextDisplay.DaysUntil == nil || *data.NextDisplay.DaysUntil != 3 {
		t.Errorf("next_display = %+v", data.NextDisplay)
	}
	if len(data.Tasks) != 1 || data.Tasks[0].Display.DaysUntil != nil {
		t.Errorf("undated task should have null days_until: %s", resp.Data)
	}
	if data.Status.Color != "yellow" {
		t.Errorf("status color = %q", data.Status.Color)
	}

	r, token = setupRouter(t, &mockUseCase{err: course.ErrCourseNotFound})
	w, _ = doJSON(r, http.MethodGet, "/api/v1/courses/missing", nil, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing course status = %d", w.Code)
	}
}

func TestUpdateTask(t *testing.T) {
	uc := &mockUseCase{}
	r, token := setupRouter(t, uc)

	w, resp := doJSON(r, http.MethodPut, "/api/v1/courses/c-1/tasks/t-1", map[string]any{}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty update status = %d (%s)", w.Code, resp.Message)
	}

	w, _ = doJSON(r, http.MethodPut, "/api/v1/courses/c-1/tasks/t-1", map[string]any{"completed": true}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	in := uc.lastUpdateTask
	if in.CourseID != "c-1" || in.TaskID != "t-1" || in.Completed == nil || !*in.Completed || in.Title != nil {
		t.Errorf("input = %+v", in)
	}

	uc.err = course.ErrTaskNotFound
	w, _ = doJSON(r, http.MethodPut, "/api/v1/courses/c-1/tasks/t-2", map[string]any{"title": "x"}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing task status = %d", w.Code)
	}
}

func TestImportTasks(t *testing.T) {
	uc := &mockUseCase{}
	r, token := setupRouter(t, uc)

	w, _ := doJSON(r, http.MethodPost, "/api/v1/courses/c-1/tasks/import", map[string]string{"markdown": "- [ ] Read"}, token)
	if w.Code != http.StatusOK || uc.lastImport.CourseID != "c-1" {
		t.Fatalf("status = %d input = %+v", w.Code, uc.lastImport)
	}

	uc.err = course.ErrEmptyChecklist
	w, _ = doJSON(r, http.MethodPost, "/api/v1/courses/c-1/tasks/import", map[string]string{"markdown": "nothing"}, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty checklist status = %d", w.Code)
	}
}

func TestCreateDeadline(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		wantStatus int
		wantField  string
	}{
		{name: "success", body: map[string]string{"title": "Midterm", "kind": "exam", "due_date": "Oct 22"}, wantStatus: http.StatusOK},
		{name: "kind optional", body: map[string]string{"title": "Midterm", "due_date": "Oct 22"}, wantStatus: http.StatusOK},
		{name: "unknown kind", body: map[string]string{"title": "Midterm", "kind": "party", "due_date": "Oct 22"}, wantStatus: http.StatusBadRequest, wantField: "kind"},
		{name: "blank due date", body: map[string]string{"title": "Midterm", "due_date": "  "}, wantStatus: http.StatusBadRequest, wantField: "due_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			r, token := setupRouter(t, uc)
			w, resp := doJSON(r, http.MethodPost, "/api/v1/courses/c-1/deadlines", tt.body, token)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantField != "" && resp.Errors[tt.wantField] == "" {
				t.Errorf("expected error for field %q, got %v", tt.wantField, resp.Errors)
			}
		})
	}
}

func TestSyncCalendar(t *testing.T) {
	uc := &mockUseCase{}
	r, token := setupRouter(t, uc)

	w, resp := doJSON(r, http.MethodPost, "/api/v1/courses/c-1/calendar/sync", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status without body = %d", w.Code)
	}
	var data syncCalendarResp
	_ = json.Unmarshal(resp.Data, &data)
	if len(data.Created) != 1 || data.Created[0].EventID != "ev-1" {
		t.Errorf("data = %s", resp.Data)
	}

	w, _ = doJSON(r, http.MethodPost, "/api/v1/courses/c-1/calendar/sync", map[string]string{"calendar_id": "study"}, token)
	if w.Code != http.StatusOK || uc.lastSync.CalendarID != "study" {
		t.Errorf("status = %d input = %+v", w.Code, uc.lastSync)
	}

	uc.err = course.ErrCalendarNotConfigured
	w, _ = doJSON(r, http.MethodPost, "/api/v1/courses/c-1/calendar/sync", nil, token)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("unconfigured status = %d", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	r, token := setupRouter(t, &mockUseCase{})
	w, resp := doJSON(r, http.MethodGet, "/api/v1/dashboard", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var data struct {
		Courses []struct {
			TasksCount   int       `json:"tasks_count"`
			NextDeadline *struct{} `json:"next_deadline"`
		} `json:"courses"`
		Urgent int `json:"urgent"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(data.Courses) != 1 || data.Courses[0].TasksCount != 4 || data.Courses[0].NextDeadline != nil || data.Urgent != 2 {
		t.Errorf("dashboard = %s", resp.Data)
	}
}
