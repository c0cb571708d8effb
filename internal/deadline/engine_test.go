package deadline_test

import (
	"testing"
	"time"

	"student-productivity/internal/deadline"
	"student-productivity/pkg/datemath"
)

// Monday, Oct 19 2026, mid-morning.
var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

type item struct {
	title string
	due   string
}

func (i item) GetDueDate() string { return i.due }

func newEngine(t *testing.T) *deadline.Engine {
	t.Helper()
	p, err := datemath.NewParser("UTC", datemath.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return deadline.New(p)
}

func TestGetStatus_Empty(t *testing.T) {
	e := newEngine(t)

	st := deadline.GetStatus(e, []item{})
	if st.Next != nil || st.Closest != nil || st.IsFinished || st.HasUpcoming {
		t.Errorf("GetStatus(empty) = %+v, want zero status", st)
	}

	st = deadline.GetStatus[item](e, nil)
	if st.Next != nil || st.Closest != nil || st.IsFinished || st.HasUpcoming {
		t.Errorf("GetStatus(nil) = %+v, want zero status", st)
	}
}

func TestGetStatus_AllUnparsable(t *testing.T) {
	e := newEngine(t)

	st := deadline.GetStatus(e, []item{{"a", "TBD"}, {"b", ""}})
	if st.Next != nil || st.Closest != nil || st.IsFinished || st.HasUpcoming {
		t.Errorf("GetStatus(unparsable) = %+v, want zero status", st)
	}
}

func TestGetStatus_Upcoming(t *testing.T) {
	e := newEngine(t)
	items := []item{
		{"week", "2026-10-26"},
		{"tomorrow", "2026-10-20"},
	}

	st := deadline.GetStatus(e, items)
	if !st.HasUpcoming || st.IsFinished {
		t.Fatalf("GetStatus = %+v, want upcoming", st)
	}
	if st.Next == nil || st.Next.title != "tomorrow" {
		t.Fatalf("Next = %+v, want tomorrow", st.Next)
	}
	if st.Closest != st.Next {
		t.Errorf("Closest should equal Next")
	}
	if st.Next != &items[1] {
		t.Errorf("Next should point at the original element")
	}
}

func TestGetStatus_OnlyPast(t *testing.T) {
	e := newEngine(t)
	items := []item{{"yesterday", "2026-10-18"}}

	st := deadline.GetStatus(e, items)
	if st.HasUpcoming || !st.IsFinished {
		t.Fatalf("GetStatus = %+v, want finished", st)
	}
	if st.Next != nil {
		t.Errorf("Next = %+v, want nil", st.Next)
	}
	if st.Closest == nil || st.Closest.title != "yesterday" {
		t.Errorf("Closest = %+v, want yesterday", st.Closest)
	}
}

func TestGetStatus_ClosestIsMostRecentPast(t *testing.T) {
	e := newEngine(t)
	items := []item{
		{"older", "2026-09-01"},
		{"recent", "2026-10-15"},
		{"junk", "someday"},
		{"middle", "2026-10-01"},
	}

	st := deadline.GetStatus(e, items)
	if st.Closest == nil || st.Closest.title != "recent" {
		t.Errorf("Closest = %+v, want recent", st.Closest)
	}
}

func TestGetStatus_TodayCountsAsUpcoming(t *testing.T) {
	e := newEngine(t)
	// Earlier in the day than fixedNow, still today.
	items := []item{{"past", "2026-10-10"}, {"today", "2026-10-19T06:00:00Z"}}

	st := deadline.GetStatus(e, items)
	if st.Next == nil || st.Next.title != "today" {
		t.Errorf("Next = %+v, want today", st.Next)
	}
}

func TestGetStatus_TieKeepsInsertionOrder(t *testing.T) {
	e := newEngine(t)
	items := []item{
		{"later", "2026-11-01"},
		{"first", "2026-10-25"},
		{"second", "2026-10-25"},
	}

	st := deadline.GetStatus(e, items)
	if st.Next == nil || st.Next.title != "first" {
		t.Errorf("Next = %+v, want first", st.Next)
	}
}

func TestGetStatus_AcademicFormat(t *testing.T) {
	e := newEngine(t)
	items := []item{{"quiz", "Mon. Nov. 24 @ 9:00am"}, {"old", "2026-01-05"}}

	st := deadline.GetStatus(e, items)
	if st.Next == nil || st.Next.title != "quiz" {
		t.Errorf("Next = %+v, want quiz", st.Next)
	}
}

func TestGetStatus_Idempotent(t *testing.T) {
	e := newEngine(t)
	items := []item{{"a", "2026-10-20"}, {"b", "2026-10-01"}, {"c", "x"}}

	first := deadline.GetStatus(e, items)
	second := deadline.GetStatus(e, items)
	if first != second {
		t.Errorf("GetStatus not idempotent: %+v vs %+v", first, second)
	}
}

func TestGetStatus_DueDateStrings(t *testing.T) {
	e := newEngine(t)
	dates := []deadline.DueDate{"2026-10-30", "2026-10-21"}

	st := deadline.GetStatus(e, dates)
	if st.Next == nil || *st.Next != "2026-10-21" {
		t.Errorf("Next = %v, want 2026-10-21", st.Next)
	}
}
