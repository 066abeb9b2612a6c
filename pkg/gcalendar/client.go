package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path. calendarID may be empty, in which case "primary"
// is used.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes, falling back to OAuth2 installed-app credentials with
// a sibling token.json.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc, calendarID: calendarID}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc, calendarID: calendarID}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP
// client. Used by tests to point the service at a fake server.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

// CreateAllDayEvent creates an all-day event on the client's calendar.
// All-day events use the Date form of EventDateTime; the end date is
// exclusive, so a one-day event ends the following day.
func (c *Client) CreateAllDayEvent(ctx context.Context, ev AllDayEvent) error {
	day, err := time.Parse("2006-01-02", ev.Date)
	if err != nil {
		return fmt.Errorf("invalid event date %q: %w", ev.Date, err)
	}

	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &calendar.EventDateTime{Date: ev.Date},
		End:         &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format("2006-01-02")},
	}

	calendarID := c.calendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	if _, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	return nil
}
