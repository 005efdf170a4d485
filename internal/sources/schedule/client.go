// Package schedule fetches the per-day match schedule from the JSONP feed.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"live-match-service/internal/domain"
	"live-match-service/internal/sources"
	"live-match-service/internal/sources/jsonp"
)

const defaultTimeout = 12 * time.Second

// Config controls how the schedule client reaches the upstream feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches and decodes the daily schedule documents.
type Client struct {
	baseURL    string
	httpClient httpDoer
	timeout    time.Duration
}

// NewClient constructs a schedule client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{}
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: doer,
		timeout:    timeout,
	}
}

// envelope is the JSON document inside the JSONP callback wrapper.
type envelope struct {
	Code int        `json:"code"`
	Data []rawEntry `json:"data"`
}

type rawEntry struct {
	MatchTime   int64       `json:"matchTime"`
	SubCateName string      `json:"subCateName"`
	HostName    string      `json:"hostName"`
	HostIcon    string      `json:"hostIcon"`
	GuestName   string      `json:"guestName"`
	GuestIcon   string      `json:"guestIcon"`
	HomeScore   *int        `json:"homeScore"`
	AwayScore   *int        `json:"awayScore"`
	Anchors     []rawAnchor `json:"anchors"`
}

type rawAnchor struct {
	Anchor struct {
		RoomNum int `json:"roomNum"`
	} `json:"anchor"`
}

// FetchSchedule downloads the schedule document for a YYYYMMDD date key.
func (c *Client) FetchSchedule(ctx context.Context, dateKey string) ([]domain.ScheduleEntry, error) {
	if c.baseURL == "" {
		return nil, sources.ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/match/matches_%s.json", c.baseURL, dateKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; live-match-service)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule: unexpected status %d for %s", resp.StatusCode, dateKey)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	payload, err := jsonp.Unwrap(body)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("schedule: decode envelope: %w", err)
	}
	if env.Code != http.StatusOK {
		return nil, fmt.Errorf("schedule: upstream code %d", env.Code)
	}

	entries := make([]domain.ScheduleEntry, 0, len(env.Data))
	for _, raw := range env.Data {
		entries = append(entries, mapEntry(raw))
	}
	return entries, nil
}

// mapEntry converts a raw feed record into the domain representation. Feed
// timestamps are in milliseconds.
func mapEntry(raw rawEntry) domain.ScheduleEntry {
	rooms := make([]int, 0, len(raw.Anchors))
	for _, a := range raw.Anchors {
		if a.Anchor.RoomNum > 0 {
			rooms = append(rooms, a.Anchor.RoomNum)
		}
	}
	return domain.ScheduleEntry{
		Kickoff:   raw.MatchTime / 1000,
		League:    raw.SubCateName,
		Home:      raw.HostName,
		HomeLogo:  raw.HostIcon,
		Away:      raw.GuestName,
		AwayLogo:  raw.GuestIcon,
		HomeScore: raw.HomeScore,
		AwayScore: raw.AwayScore,
		RoomIDs:   rooms,
	}
}
