package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"student-productivity/internal/deadline"
	"student-productivity/internal/model"
	"student-productivity/internal/resume"
	"student-productivity/pkg/log"
)

const (
	ToolDeadlineStatus = "deadline_status"
	ToolCourseStatus   = "course_status"
	ToolResumeMatch    = "resume_match"

	maxDueDates = 500
)

// Tools exposes the deadline engine and resume analysis as MCP tools.
type Tools struct {
	engine *deadline.Engine
	resume resume.UseCase
	l      log.Logger
}

func New(engine *deadline.Engine, resumeUC resume.UseCase, l log.Logger) *Tools {
	return &Tools{engine: engine, resume: resumeUC, l: l}
}

// NewServer creates an MCP server with every tool registered.
func NewServer(name, version string, t *Tools) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	t.Register(s)
	return s
}

// Register adds the tools to s.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool(ToolDeadlineStatus,
		mcp.WithDescription("Classify due dates relative to today: next upcoming, closest, and a display string with overdue/urgent flags for each."),
		mcp.WithArray("due_dates", mcp.Required(), mcp.WithStringItems(),
			mcp.Description("Due dates as typed by a student, e.g. \"2026-11-03\", \"Nov. 24\", \"Mon. Dec. 1 @ 9am\".")),
		mcp.WithReadOnlyHintAnnotation(true),
	), t.DeadlineStatus)

	s.AddTool(mcp.NewTool(ToolCourseStatus,
		mcp.WithDescription("Label a course from its task progress and the days until its nearest deadline."),
		mcp.WithNumber("progress", mcp.Required(), mcp.Min(0), mcp.Max(100),
			mcp.Description("Completed tasks as a percentage, 0-100.")),
		mcp.WithArray("due_dates", mcp.WithStringItems(),
			mcp.Description("Due dates of the course's deadlines.")),
		mcp.WithNumber("tasks_count", mcp.Min(0),
			mcp.Description("Number of tasks in the course.")),
		mcp.WithReadOnlyHintAnnotation(true),
	), t.CourseStatus)

	s.AddTool(mcp.NewTool(ToolResumeMatch,
		mcp.WithDescription("Score how well a resume matches a job description by keyword overlap and suggest improvements."),
		mcp.WithString("resume_text", mcp.Required(), mcp.Description("Plain-text resume.")),
		mcp.WithString("job_description", mcp.Required(), mcp.Description("Job posting text; HTML is stripped.")),
		mcp.WithReadOnlyHintAnnotation(true),
	), t.ResumeMatch)
}

// DeadlineStatus handles the deadline_status tool.
func (t *Tools) DeadlineStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireStringSlice("due_dates")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(raw) > maxDueDates {
		return mcp.NewToolResultError(fmt.Sprintf("at most %d due dates are accepted", maxDueDates)), nil
	}

	dates := make([]deadline.DueDate, len(raw))
	for i, d := range raw {
		dates[i] = deadline.DueDate(d)
	}
	st := deadline.GetStatus(t.engine, dates)

	out := deadlineStatusOutput{
		Next:        dueDatePtr(st.Next),
		Closest:     dueDatePtr(st.Closest),
		IsFinished:  st.IsFinished,
		HasUpcoming: st.HasUpcoming,
		NextDisplay: newDisplayOutput(deadline.DescribeNext(t.engine, st.Next)),
		Items:       make([]dueDateOutput, len(dates)),
	}
	for i, d := range dates {
		out.Items[i] = dueDateOutput{DueDate: string(d), Display: newDisplayOutput(t.engine.Describe(d))}
	}
	return structured(out)
}

// CourseStatus handles the course_status tool.
func (t *Tools) CourseStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	progress, err := req.RequireFloat("progress")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tasks := req.GetInt("tasks_count", 0)
	if tasks < 0 {
		return mcp.NewToolResultError("tasks_count must not be negative"), nil
	}

	raw := req.GetStringSlice("due_dates", nil)
	dates := make([]deadline.DueDate, len(raw))
	for i, d := range raw {
		dates[i] = deadline.DueDate(d)
	}

	st := deadline.GetCourseStatus(t.engine, progress, dates, tasks)
	return structured(courseStatusOutput{Status: st.Status, Message: st.Message, Color: string(st.Color)})
}

// ResumeMatch handles the resume_match tool.
func (t *Tools) ResumeMatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resumeText, err := req.RequireString("resume_text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	jobDescription, err := req.RequireString("job_description")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := t.resume.Analyze(ctx, model.Scope{}, resume.AnalyzeInput{ResumeText: resumeText, JobDescription: jobDescription})
	if errors.Is(err, resume.ErrEmptyInput) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err != nil {
		t.l.Errorf(ctx, "mcptools.ResumeMatch: %v", err)
		return nil, err
	}

	return structured(resumeMatchOutput{
		MatchScore:      res.Result.MatchScore,
		MatchedKeywords: res.Result.MatchedKeywords,
		MissingKeywords: res.Result.MissingKeywords,
		SeniorityCues:   res.Result.SeniorityCues,
		Recommendations: res.Recommendations,
		Source:          res.Source,
	})
}

func dueDatePtr(d *deadline.DueDate) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

// structured returns v as structured content with its JSON as the text fallback.
func structured(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return mcp.NewToolResultStructured(v, string(b)), nil
}
