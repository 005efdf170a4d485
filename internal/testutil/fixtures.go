package testutil

import (
	"time"

	"live-match-service/internal/domain"
)

// SampleScheduleEntry returns a minimal schedule fixture kicking off at the
// given offset from now.
func SampleScheduleEntry(now time.Time, offset time.Duration) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Kickoff:  now.Add(offset).Unix(),
		League:   "ENG PR",
		Home:     "Arsenal",
		HomeLogo: "https://img.example/arsenal.png",
		Away:     "Chelsea",
		AwayLogo: "https://img.example/chelsea.png",
		RoomIDs:  []int{100101},
	}
}

// SampleResultRow returns a result row that pairs with SampleScheduleEntry.
func SampleResultRow() domain.ResultRow {
	return domain.ResultRow{
		League:   "english premier league",
		Home:     "arsenal",
		Away:     "chelsea",
		FullTime: "2 - 1",
		HalfTime: "(1 - 0)",
	}
}
