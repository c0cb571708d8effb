package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"student-productivity/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   response.Date
		want string
	}{
		{name: "date", in: response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)), want: `"2024-05-01"`},
		{name: "zero", in: response.Date(time.Time{}), want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, loc))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if want := `"2024-05-01 08:30:00"`; string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}

	b, _ = json.Marshal(response.DateTime(time.Time{}))
	if string(b) != "null" {
		t.Errorf("zero DateTime = %s, want null", b)
	}
}
