package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	courseSQLite "student-productivity/internal/course/repository/sqlite"
	"student-productivity/internal/deadline"
	"student-productivity/internal/httpserver"
	userSQLite "student-productivity/internal/user/repository/sqlite"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/log"
	"student-productivity/pkg/scope"
	"student-productivity/pkg/sqlite"
	"student-productivity/pkg/validation"
)

var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newServer(t *testing.T) *httpserver.HTTPServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(ctx, db, userSQLite.Schema, courseSQLite.Schema); err != nil {
		t.Fatalf("sqlite.Migrate: %v", err)
	}

	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("gin binding engine is not validator/v10")
	}
	v, err := validation.New(engine)
	if err != nil {
		t.Fatalf("validation.New: %v", err)
	}

	jwtManager, err := scope.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("scope.New: %v", err)
	}

	parser, err := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		DB:          db,
		Validator:   v,
		JWTManager:  jwtManager,
		Engine:      deadline.New(parser),
		HashCost:    bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	return srv
}

func do(t *testing.T, srv *httpserver.HTTPServer, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env
}

func TestNew_Validation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 8080})
	if err == nil {
		t.Fatal("expected an error for missing dependencies")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			code, _ := do(t, srv, http.MethodGet, path, "", nil)
			if code != http.StatusOK {
				t.Errorf("GET %s = %d, want 200", path, code)
			}
		})
	}
}

func TestCourseFlow(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "Str0ng!Pass",
	})
	if code != http.StatusOK {
		t.Fatalf("register = %d (%s)", code, env.Message)
	}
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil || auth.AccessToken == "" {
		t.Fatalf("register data = %s, err = %v", env.Data, err)
	}
	token := auth.AccessToken

	if code, _ := do(t, srv, http.MethodGet, "/api/v1/courses", "", nil); code != http.StatusUnauthorized {
		t.Errorf("list without token = %d, want 401", code)
	}

	code, env = do(t, srv, http.MethodPost, "/api/v1/courses", token, map[string]string{"name": "Algorithms", "code": "CS301"})
	if code != http.StatusOK {
		t.Fatalf("create course = %d (%s)", code, env.Message)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == "" {
		t.Fatalf("create course data = %s, err = %v", env.Data, err)
	}
	base := "/api/v1/courses/" + created.ID

	code, env = do(t, srv, http.MethodPost, base+"/tasks/import", token, map[string]string{
		"markdown": "- [x] Read chapter 1\n- [ ] Problem set 1 (due: 2026-10-20)\n",
	})
	if code != http.StatusOK {
		t.Fatalf("import = %d (%s)", code, env.Message)
	}

	code, env = do(t, srv, http.MethodPost, base+"/deadlines", token, map[string]string{
		"title": "Midterm", "kind": "exam", "due_date": "2026-10-22",
	})
	if code != http.StatusOK {
		t.Fatalf("create deadline = %d (%s)", code, env.Message)
	}

	code, env = do(t, srv, http.MethodGet, base, token, nil)
	if code != http.StatusOK {
		t.Fatalf("overview = %d (%s)", code, env.Message)
	}
	var overview struct {
		Progress     float64 `json:"progress"`
		NextDeadline *struct {
			Title string `json:"title"`
		} `json:"next_deadline"`
		NextDisplay struct {
			Text string `json:"text"`
		} `json:"next_display"`
	}
	if err := json.Unmarshal(env.Data, &overview); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if overview.Progress != 50 {
		t.Errorf("progress = %v, want 50", overview.Progress)
	}
	if overview.NextDeadline == nil || overview.NextDeadline.Title != "Midterm" {
		t.Errorf("next deadline = %+v, want Midterm", overview.NextDeadline)
	}
	if overview.NextDisplay.Text != "Due in 3 days" {
		t.Errorf("next display = %q, want %q", overview.NextDisplay.Text, "Due in 3 days")
	}

	if code, _ := do(t, srv, http.MethodGet, "/api/v1/dashboard", token, nil); code != http.StatusOK {
		t.Errorf("dashboard = %d, want 200", code)
	}

	code, env = do(t, srv, http.MethodPost, base+"/calendar/sync", token, nil)
	if code != http.StatusServiceUnavailable {
		t.Errorf("calendar sync without calendar = %d (%s), want 503", code, env.Message)
	}

	if code, _ := do(t, srv, http.MethodDelete, base, token, nil); code != http.StatusOK {
		t.Errorf("delete course = %d, want 200", code)
	}
	if code, _ := do(t, srv, http.MethodGet, base, token, nil); code != http.StatusNotFound {
		t.Errorf("overview after delete = %d, want 404", code)
	}
}

func TestEngineRoutes(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "grace",
		"email":    "grace@example.com",
		"password": "Str0ng!Pass",
	})
	if code != http.StatusOK {
		t.Fatalf("register = %d (%s)", code, env.Message)
	}
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	_ = json.Unmarshal(env.Data, &auth)

	code, env = do(t, srv, http.MethodPost, "/api/v1/courses/status", auth.AccessToken, map[string]any{
		"progress":    100,
		"tasks_count": 4,
	})
	if code != http.StatusOK {
		t.Fatalf("course status = %d (%s)", code, env.Message)
	}
	var st struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &st); err != nil || st.Status != "Completed" {
		t.Errorf("course status data = %s, err = %v", env.Data, err)
	}

	code, env = do(t, srv, http.MethodPost, "/api/v1/deadlines/status", auth.AccessToken, map[string]any{
		"deadlines": []map[string]string{{"title": "Essay", "due_date": "2026-10-20"}},
	})
	if code != http.StatusOK {
		t.Fatalf("deadline status = %d (%s)", code, env.Message)
	}
}
