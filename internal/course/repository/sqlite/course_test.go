package sqlite_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"

	repo "student-productivity/internal/course/repository"
	courseSQLite "student-productivity/internal/course/repository/sqlite"
	userRepo "student-productivity/internal/user/repository"
	userSQLite "student-productivity/internal/user/repository/sqlite"
	"student-productivity/pkg/log"
	"student-productivity/pkg/sqlite"
)

func newDB(t *testing.T) (*sqlx.DB, string) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.Migrate(ctx, db, userSQLite.Schema, courseSQLite.Schema); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	u, err := userSQLite.New(db, log.NewNop()).CreateUser(ctx, userRepo.CreateUserOptions{
		Username: "ada", Email: "ada@example.com", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return db, u.ID
}

func TestCourseRepository(t *testing.T) {
	ctx := context.Background()
	db, userID := newDB(t)
	r := courseSQLite.New(db, log.NewNop())

	algo, err := r.CreateCourse(ctx, repo.CreateCourseOptions{UserID: userID, Name: "Algorithms", Code: "CS301"})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if _, err := r.CreateCourse(ctx, repo.CreateCourseOptions{UserID: userID, Name: "Biology"}); err != nil {
		t.Fatalf("CreateCourse without code: %v", err)
	}
	if _, err := r.CreateCourse(ctx, repo.CreateCourseOptions{UserID: userID, Name: "Chemistry"}); err != nil {
		t.Fatalf("second course without code: %v", err)
	}
	if _, err := r.CreateCourse(ctx, repo.CreateCourseOptions{UserID: userID, Name: "Dup", Code: "cs301"}); err == nil {
		t.Fatal("duplicate code should fail")
	}

	tests := []struct {
		name   string
		opt    repo.GetOneCourseOptions
		wantID string
	}{
		{name: "by id", opt: repo.GetOneCourseOptions{ID: algo.ID}, wantID: algo.ID},
		{name: "by owner and code any case", opt: repo.GetOneCourseOptions{UserID: userID, Code: "cs301"}, wantID: algo.ID},
		{name: "wrong owner", opt: repo.GetOneCourseOptions{ID: algo.ID, UserID: "someone"}},
		{name: "no filter", opt: repo.GetOneCourseOptions{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetOneCourse(ctx, tt.opt)
			if err != nil {
				t.Fatalf("GetOneCourse: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}

	list, err := r.ListCourses(ctx, repo.ListCoursesOptions{UserID: userID})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(list) != 3 || list[0].Name != "Algorithms" || list[2].Name != "Chemistry" {
		t.Fatalf("ListCourses = %+v", list)
	}

	updated, err := r.UpdateCourse(ctx, repo.UpdateCourseOptions{ID: algo.ID, Name: "Algorithms II", Code: "CS302", Instructor: "Knuth"})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.Name != "Algorithms II" || updated.Instructor != "Knuth" {
		t.Errorf("UpdateCourse = %+v", updated)
	}
	missing, err := r.UpdateCourse(ctx, repo.UpdateCourseOptions{ID: "missing", Name: "x"})
	if err != nil || missing.ID != "" {
		t.Errorf("UpdateCourse(missing) = %+v, %v", missing, err)
	}
}

func TestTasksAndDeadlines(t *testing.T) {
	ctx := context.Background()
	db, userID := newDB(t)
	r := courseSQLite.New(db, log.NewNop())

	c, err := r.CreateCourse(ctx, repo.CreateCourseOptions{UserID: userID, Name: "Algorithms"})
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	tasks, err := r.CreateTasks(ctx, []repo.CreateTaskOptions{
		{CourseID: c.ID, Title: "Read chapter 1", DueDate: "2026-10-20"},
		{CourseID: c.ID, Title: "Problem set", Completed: true},
		{CourseID: c.ID, Title: "Lab report", DueDate: "Nov 3"},
	})
	if err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("CreateTasks returned %d tasks", len(tasks))
	}

	all, err := r.ListTasks(ctx, repo.ListTasksOptions{CourseIDs: []string{c.ID}})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 3 || all[0].Title != "Read chapter 1" || all[2].Title != "Lab report" {
		t.Fatalf("ListTasks order = %+v", all)
	}
	if !all[1].Completed {
		t.Error("completed flag not persisted")
	}

	pending, err := r.ListTasks(ctx, repo.ListTasksOptions{CourseIDs: []string{c.ID}, IncompleteOnly: true})
	if err != nil {
		t.Fatalf("ListTasks incomplete: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("incomplete tasks = %d, want 2", len(pending))
	}

	done, err := r.UpdateTask(ctx, repo.UpdateTaskOptions{ID: tasks[0].ID, Title: "Read chapter 1", DueDate: "2026-10-20", Completed: true})
	if err != nil || !done.Completed {
		t.Fatalf("UpdateTask = %+v, %v", done, err)
	}

	other, err := r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: tasks[0].ID, CourseID: "other"})
	if err != nil || other.ID != "" {
		t.Errorf("GetOneTask with wrong course = %+v, %v", other, err)
	}

	if err := r.DeleteTask(ctx, tasks[2].ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	d, err := r.CreateDeadline(ctx, repo.CreateDeadlineOptions{CourseID: c.ID, Title: "Midterm", Kind: "exam", DueDate: "2026-10-28"})
	if err != nil {
		t.Fatalf("CreateDeadline: %v", err)
	}
	got, err := r.GetOneDeadline(ctx, repo.GetOneDeadlineOptions{ID: d.ID, CourseID: c.ID})
	if err != nil || got.Title != "Midterm" || got.Kind != "exam" {
		t.Fatalf("GetOneDeadline = %+v, %v", got, err)
	}

	if err := r.DeleteCourse(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}
	left, err := r.ListTasks(ctx, repo.ListTasksOptions{CourseIDs: []string{c.ID}})
	if err != nil || len(left) != 0 {
		t.Errorf("tasks after course delete = %d, %v", len(left), err)
	}
	deadlines, err := r.ListDeadlines(ctx, repo.ListDeadlinesOptions{CourseIDs: []string{c.ID}})
	if err != nil || len(deadlines) != 0 {
		t.Errorf("deadlines after course delete = %d, %v", len(deadlines), err)
	}
}
