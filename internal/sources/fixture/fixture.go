// Package fixture returns a static set of matches useful for local testing
// and bootstrapping without the real upstreams.
package fixture

import (
	"context"
	"time"

	"live-match-service/internal/domain"
)

// Provider implements every source contract with deterministic data.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchResults returns scraped-style rows covering one live and one finished
// fixture.
func (p *Provider) FetchResults(ctx context.Context) ([]domain.ResultRow, error) {
	_ = ctx
	return []domain.ResultRow{
		{League: "english premier league", Home: "arsenal", Away: "chelsea", FullTime: "2 - 1", HalfTime: "1 - 0"},
		{League: "spanish la liga", Home: "real madrid", Away: "sevilla", FullTime: "-", HalfTime: "-"},
	}, nil
}

// FetchSchedule returns one live fixture and one upcoming fixture for any
// requested date key.
func (p *Provider) FetchSchedule(ctx context.Context, dateKey string) ([]domain.ScheduleEntry, error) {
	_ = ctx
	_ = dateKey

	now := p.now()
	return []domain.ScheduleEntry{
		{
			Kickoff:  now.Add(-30 * time.Minute).Unix(),
			League:   "ENG PR",
			Home:     "Arsenal",
			HomeLogo: "https://img.example/arsenal.png",
			Away:     "Chelsea",
			AwayLogo: "https://img.example/chelsea.png",
			RoomIDs:  []int{100101},
		},
		{
			Kickoff:  now.Add(6 * time.Hour).Unix(),
			League:   "SPA D1",
			Home:     "Real Madrid",
			HomeLogo: "https://img.example/realmadrid.png",
			Away:     "Sevilla",
			AwayLogo: "https://img.example/sevilla.png",
			RoomIDs:  []int{100102},
		},
	}, nil
}

// FetchRoomStreams returns a single standard-tier stream for any room.
func (p *Provider) FetchRoomStreams(ctx context.Context, roomID int) ([]domain.Stream, error) {
	_ = ctx
	_ = roomID
	return []domain.Stream{
		{Tier: domain.TierStandard, URL: "https://stream.example/fixture/index.m3u8"},
	}, nil
}
