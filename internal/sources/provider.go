// Package sources defines how upstream match data is fetched and normalized.
package sources

import (
	"context"

	"live-match-service/internal/domain"
)

// ResultsProvider fetches scraped score rows from the results page.
type ResultsProvider interface {
	FetchResults(ctx context.Context) ([]domain.ResultRow, error)
}

// ScheduleProvider fetches the structured fixture list for one YYYYMMDD date
// key.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, dateKey string) ([]domain.ScheduleEntry, error)
}

// StreamProvider fetches the stream URLs available for one room.
type StreamProvider interface {
	FetchRoomStreams(ctx context.Context, roomID int) ([]domain.Stream, error)
}

// DataProvider combines all source capabilities (used by the fixture source).
type DataProvider interface {
	ResultsProvider
	ScheduleProvider
	StreamProvider
}
