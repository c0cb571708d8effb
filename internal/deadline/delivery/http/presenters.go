package http

import (
	"student-productivity/internal/deadline"
)

// --- Request DTOs ---

type itemReq struct {
	Title   string `json:"title"    binding:"max=200"`
	DueDate string `json:"due_date" binding:"max=128"`
}

func (r itemReq) GetDueDate() string { return r.DueDate }

type deadlineStatusReq struct {
	Deadlines []itemReq `json:"deadlines" binding:"max=500,dive"`
}

func (r deadlineStatusReq) validate() error { return nil }

type courseStatusReq struct {
	Progress   float64   `json:"progress"`
	Deadlines  []itemReq `json:"deadlines"   binding:"max=500,dive"`
	TasksCount int       `json:"tasks_count" binding:"min=0"`
}

func (r courseStatusReq) validate() error { return nil }

// --- Response DTOs ---

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

type itemResp struct {
	Title   string      `json:"title"`
	DueDate string      `json:"due_date"`
	Display displayResp `json:"display"`
}

func newItemRespPtr(e *deadline.Engine, it *itemReq) *itemResp {
	if it == nil {
		return nil
	}
	return &itemResp{Title: it.Title, DueDate: it.DueDate, Display: newDisplayResp(e.Describe(*it))}
}

type deadlineStatusResp struct {
	Next        *itemResp   `json:"next"`
	Closest     *itemResp   `json:"closest"`
	IsFinished  bool        `json:"is_finished"`
	HasUpcoming bool        `json:"has_upcoming"`
	Items       []itemResp  `json:"items"`
	NextDisplay displayResp `json:"next_display"`
}

func (h *handler) newDeadlineStatusResp(items []itemReq, st deadline.Status[itemReq]) deadlineStatusResp {
	resp := deadlineStatusResp{
		Next:        newItemRespPtr(h.engine, st.Next),
		Closest:     newItemRespPtr(h.engine, st.Closest),
		IsFinished:  st.IsFinished,
		HasUpcoming: st.HasUpcoming,
		Items:       make([]itemResp, len(items)),
		NextDisplay: newDisplayResp(deadline.DescribeNext(h.engine, st.Next)),
	}
	for i := range items {
		resp.Items[i] = *newItemRespPtr(h.engine, &items[i])
	}
	return resp
}

type courseStatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

func (h *handler) newCourseStatusResp(s deadline.CourseStatus) courseStatusResp {
	return courseStatusResp{Status: s.Status, Message: s.Message, Color: string(s.Color)}
}
