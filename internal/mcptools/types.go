package mcptools

import "student-productivity/internal/deadline"

type displayOutput struct {
	Text      string `json:"text"`
	DaysUntil *int   `json:"days_until"`
	Overdue   bool   `json:"overdue"`
	Urgent    bool   `json:"urgent"`
}

func newDisplayOutput(d deadline.Display) displayOutput {
	out := displayOutput{Text: d.Text, Overdue: d.Overdue, Urgent: d.Urgent}
	if d.Valid {
		days := d.DaysUntil
		out.DaysUntil = &days
	}
	return out
}

type dueDateOutput struct {
	DueDate string        `json:"due_date"`
	Display displayOutput `json:"display"`
}

type deadlineStatusOutput struct {
	Next        *string         `json:"next"`
	Closest     *string         `json:"closest"`
	IsFinished  bool            `json:"is_finished"`
	HasUpcoming bool            `json:"has_upcoming"`
	NextDisplay displayOutput   `json:"next_display"`
	Items       []dueDateOutput `json:"items"`
}

type courseStatusOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Color   string `json:"color"`
}

type resumeMatchOutput struct {
	MatchScore      int      `json:"match_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	SeniorityCues   []string `json:"seniority_cues"`
	Recommendations []string `json:"recommendations"`
	Source          string   `json:"source"`
}
