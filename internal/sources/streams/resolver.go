// Package streams resolves playable stream URLs for broadcast rooms.
package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sourcegraph/conc/iter"

	"live-match-service/internal/domain"
	"live-match-service/internal/logging"
	"live-match-service/internal/metrics"
	"live-match-service/internal/sources"
	"live-match-service/internal/sources/jsonp"
)

const defaultTimeout = 12 * time.Second

// Config controls how the resolver reaches the room detail endpoint.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver fetches stream URLs for rooms, fanning out one request per room.
type Resolver struct {
	baseURL    string
	httpClient httpDoer
	timeout    time.Duration
	recorder   *metrics.Recorder
}

// NewResolver constructs a resolver with the provided configuration.
func NewResolver(cfg Config, recorder *metrics.Recorder) *Resolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{}
	}
	return &Resolver{
		baseURL:    cfg.BaseURL,
		httpClient: doer,
		timeout:    timeout,
		recorder:   recorder,
	}
}

// roomDetail is the JSON document inside the per-room JSONP wrapper.
type roomDetail struct {
	Data struct {
		Stream struct {
			M3U8   string `json:"m3u8"`
			HDM3U8 string `json:"hdM3u8"`
		} `json:"stream"`
	} `json:"data"`
}

// Resolve fetches streams for every room concurrently. A failing room is
// logged and skipped; the remaining rooms still contribute their streams.
// Order follows the input room order.
func (r *Resolver) Resolve(ctx context.Context, roomIDs []int) []domain.Stream {
	if len(roomIDs) == 0 {
		return nil
	}

	log := logging.FromContext(ctx, nil)

	perRoom := iter.Map(roomIDs, func(roomID *int) []domain.Stream {
		found, err := r.fetchRoom(ctx, *roomID)
		r.recorder.RecordStreamRoom(err)
		if err != nil {
			logging.Warn(log, "stream room fetch failed",
				logging.FieldRoom, *roomID,
				"error", err,
			)
			return nil
		}
		return found
	})

	var streams []domain.Stream
	for _, found := range perRoom {
		streams = append(streams, found...)
	}
	return streams
}

// FetchRoomStreams resolves a single room, satisfying the provider contract.
func (r *Resolver) FetchRoomStreams(ctx context.Context, roomID int) ([]domain.Stream, error) {
	found, err := r.fetchRoom(ctx, roomID)
	r.recorder.RecordStreamRoom(err)
	return found, err
}

func (r *Resolver) fetchRoom(ctx context.Context, roomID int) ([]domain.Stream, error) {
	if r.baseURL == "" {
		return nil, sources.ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/room/%d/detail.json", r.baseURL, roomID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; live-match-service)")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("streams: unexpected status %d for room %d", resp.StatusCode, roomID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	payload, err := jsonp.Unwrap(body)
	if err != nil {
		return nil, fmt.Errorf("streams: room %d: %w", roomID, err)
	}

	var detail roomDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return nil, fmt.Errorf("streams: decode room %d: %w", roomID, err)
	}

	var found []domain.Stream
	if url := detail.Data.Stream.M3U8; url != "" {
		found = append(found, domain.Stream{Tier: domain.TierStandard, URL: url})
	}
	if url := detail.Data.Stream.HDM3U8; url != "" {
		found = append(found, domain.Stream{Tier: domain.TierHighDef, URL: url})
	}
	return found, nil
}
