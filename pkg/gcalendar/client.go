package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
	defaultMaxResults = 250
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

var _ Calendar = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file. OAuth desktop credentials read their token from tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON, or OAuth
// installed-app JSON paired with a stored token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	}

	oauthConfig, oauthErr := InstalledAppConfig(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth desktop type: %w", err)
	}

	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateAllDayEvent inserts an all-day event. The end date is exclusive,
// so it is the day after Date.
func (c *Client) CreateAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error) {
	day := req.Date.Format(dateLayout)
	event := &calendar.Event{
		Summary:      req.Summary,
		Description:  req.Description,
		Start:        &calendar.EventDateTime{Date: day},
		End:          &calendar.EventDateTime{Date: req.Date.AddDate(0, 0, 1).Format(dateLayout)},
		Transparency: "transparent",
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     req.Summary,
		Description: req.Description,
		HtmlLink:    created.HtmlLink,
		Date:        day,
	}, nil
}

// ListEvents returns single events between TimeMin and TimeMax ordered by start.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	res, err := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toEvent(item))
	}
	return events, nil
}

func toEvent(item *calendar.Event) Event {
	e := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
	}
	if item.Start != nil {
		e.Date = item.Start.Date
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			e.StartTime = t
		}
	}
	if item.End != nil {
		if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			e.EndTime = t
		}
	}
	return e
}

func calendarID(id string) string {
	if id == "" {
		return defaultCalendarID
	}
	return id
}
