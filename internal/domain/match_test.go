package domain

import (
	"testing"
	"time"
)

func TestStatusAtBoundaries(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	cases := []struct {
		name    string
		kickoff int64
		want    Status
	}{
		{"kickoff now", now.Unix(), StatusLive},
		{"one second before kickoff", now.Unix() + 1, StatusUpcoming},
		{"window upper bound inclusive", now.Unix() - 7200, StatusLive},
		{"one second past window", now.Unix() - 7201, StatusFinished},
		{"far future", now.Unix() + 86400, StatusUpcoming},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := ScheduleEntry{Kickoff: tc.kickoff}
			if got := e.StatusAt(now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
