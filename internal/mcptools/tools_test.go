package mcptools

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"student-productivity/internal/deadline"
	resumeUC "student-productivity/internal/resume/usecase"
	"student-productivity/pkg/datemath"
	"student-productivity/pkg/log"
)

var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	parser, err := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := log.NewNop()
	return New(deadline.New(parser), resumeUC.New(nil, l), l)
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
}

func TestDeadlineStatus(t *testing.T) {
	tools := newTestTools(t)

	tcs := map[string]struct {
		args        map[string]any
		wantErr     bool
		wantNext    string
		wantClosest string
		wantDisplay string
		wantItems   int
	}{
		"mixed": {
			args:        map[string]any{"due_dates": []any{"2026-10-15", "2026-10-22", "2026-10-20"}},
			wantNext:    "2026-10-20",
			wantClosest: "2026-10-20",
			wantDisplay: "Due tomorrow",
			wantItems:   3,
		},
		"all past": {
			args:        map[string]any{"due_dates": []any{"2026-10-01"}},
			wantClosest: "2026-10-01",
			wantDisplay: "No deadlines",
			wantItems:   1,
		},
		"missing argument": {
			args:    map[string]any{},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			res, err := tools.DeadlineStatus(context.Background(), callReq(ToolDeadlineStatus, tc.args))
			if err != nil {
				t.Fatalf("DeadlineStatus() error = %v", err)
			}
			if res.IsError != tc.wantErr {
				t.Fatalf("IsError = %v, want %v", res.IsError, tc.wantErr)
			}
			if tc.wantErr {
				return
			}

			out, ok := res.StructuredContent.(deadlineStatusOutput)
			if !ok {
				t.Fatalf("StructuredContent type = %T", res.StructuredContent)
			}
			if got := deref(out.Next); got != tc.wantNext {
				t.Errorf("Next = %q, want %q", got, tc.wantNext)
			}
			if got := deref(out.Closest); got != tc.wantClosest {
				t.Errorf("Closest = %q, want %q", got, tc.wantClosest)
			}
			if out.NextDisplay.Text != tc.wantDisplay {
				t.Errorf("NextDisplay.Text = %q, want %q", out.NextDisplay.Text, tc.wantDisplay)
			}
			if len(out.Items) != tc.wantItems {
				t.Errorf("len(Items) = %d, want %d", len(out.Items), tc.wantItems)
			}
			if len(res.Content) != 1 {
				t.Errorf("len(Content) = %d, want 1", len(res.Content))
			}
		})
	}
}

func TestDeadlineStatus_TooMany(t *testing.T) {
	tools := newTestTools(t)

	dates := make([]any, maxDueDates+1)
	for i := range dates {
		dates[i] = "2026-11-01"
	}
	res, err := tools.DeadlineStatus(context.Background(), callReq(ToolDeadlineStatus, map[string]any{"due_dates": dates}))
	if err != nil {
		t.Fatalf("DeadlineStatus() error = %v", err)
	}
	if !res.IsError {
		t.Fatal("expected a tool error")
	}
}

func TestCourseStatus(t *testing.T) {
	tools := newTestTools(t)

	tcs := map[string]struct {
		args       map[string]any
		wantErr    bool
		wantStatus string
		wantColor  string
	}{
		"not started": {
			args:       map[string]any{"progress": 0.0, "tasks_count": 3.0},
			wantStatus: "Not Started",
			wantColor:  "gray",
		},
		"urgent": {
			args:       map[string]any{"progress": 20.0, "due_dates": []any{"2026-10-20"}, "tasks_count": 5.0},
			wantStatus: "Urgent",
			wantColor:  "red",
		},
		"completed": {
			args:       map[string]any{"progress": 100.0},
			wantStatus: "Completed",
			wantColor:  "green",
		},
		"missing progress": {
			args:    map[string]any{"tasks_count": 1.0},
			wantErr: true,
		},
		"negative tasks": {
			args:    map[string]any{"progress": 10.0, "tasks_count": -1.0},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			res, err := tools.CourseStatus(context.Background(), callReq(ToolCourseStatus, tc.args))
			if err != nil {
				t.Fatalf("CourseStatus() error = %v", err)
			}
			if res.IsError != tc.wantErr {
				t.Fatalf("IsError = %v, want %v", res.IsError, tc.wantErr)
			}
			if tc.wantErr {
				return
			}

			out := res.StructuredContent.(courseStatusOutput)
			if out.Status != tc.wantStatus {
				t.Errorf("Status = %q, want %q", out.Status, tc.wantStatus)
			}
			if out.Color != tc.wantColor {
				t.Errorf("Color = %q, want %q", out.Color, tc.wantColor)
			}
		})
	}
}

func TestResumeMatch(t *testing.T) {
	tools := newTestTools(t)

	t.Run("keyword advice", func(t *testing.T) {
		res, err := tools.ResumeMatch(context.Background(), callReq(ToolResumeMatch, map[string]any{
			"resume_text":     "Go developer with Docker experience.",
			"job_description": "<p>Senior engineer: Go, Docker, Kubernetes.</p>",
		}))
		if err != nil {
			t.Fatalf("ResumeMatch() error = %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected tool error: %+v", res.Content)
		}
		out := res.StructuredContent.(resumeMatchOutput)
		if out.Source != "keywords" {
			t.Errorf("Source = %q, want keywords", out.Source)
		}
		if out.MatchScore <= 0 || out.MatchScore >= 100 {
			t.Errorf("MatchScore = %d, want between 0 and 100", out.MatchScore)
		}
		if len(out.Recommendations) == 0 {
			t.Error("expected recommendations")
		}
	})

	t.Run("blank resume", func(t *testing.T) {
		res, err := tools.ResumeMatch(context.Background(), callReq(ToolResumeMatch, map[string]any{
			"resume_text":     "   ",
			"job_description": "Go",
		}))
		if err != nil {
			t.Fatalf("ResumeMatch() error = %v", err)
		}
		if !res.IsError {
			t.Fatal("expected a tool error")
		}
	})

	t.Run("missing job description", func(t *testing.T) {
		res, err := tools.ResumeMatch(context.Background(), callReq(ToolResumeMatch, map[string]any{"resume_text": "Go"}))
		if err != nil {
			t.Fatalf("ResumeMatch() error = %v", err)
		}
		if !res.IsError {
			t.Fatal("expected a tool error")
		}
	})
}

func TestNewServer(t *testing.T) {
	s := NewServer("student-productivity", "test", newTestTools(t))
	tools := s.ListTools()
	for _, name := range []string{ToolDeadlineStatus, ToolCourseStatus, ToolResumeMatch} {
		if _, ok := tools[name]; !ok {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
