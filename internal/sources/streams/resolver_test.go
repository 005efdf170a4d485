package streams

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"live-match-service/internal/domain"
	"live-match-service/internal/metrics"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newTestResolver(recorder *metrics.Recorder, rt roundTripperFunc) *Resolver {
	return NewResolver(Config{
		BaseURL:    "http://streams.example",
		HTTPClient: &http.Client{Transport: rt},
		Timeout:    time.Second,
	}, recorder)
}

func TestResolveCollectsTiersAcrossRooms(t *testing.T) {
	recorder := metrics.NewRecorder()
	resolver := newTestResolver(recorder, func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/room/1/detail.json":
			return jsonResponse(http.StatusOK, `detail({"data":{"stream":{"m3u8":"https://cdn.example/r1.m3u8","hdM3u8":"https://cdn.example/r1-hd.m3u8"}}});`), nil
		case "/room/2/detail.json":
			return jsonResponse(http.StatusOK, `detail({"data":{"stream":{"m3u8":"https://cdn.example/r2.m3u8","hdM3u8":""}}});`), nil
		default:
			t.Fatalf("unexpected path %s", req.URL.Path)
			return nil, nil
		}
	})

	streams := resolver.Resolve(context.Background(), []int{1, 2})
	if len(streams) != 3 {
		t.Fatalf("expected 3 streams, got %+v", streams)
	}
	if streams[0].Tier != domain.TierStandard || streams[0].URL != "https://cdn.example/r1.m3u8" {
		t.Fatalf("unexpected first stream %+v", streams[0])
	}
	if streams[1].Tier != domain.TierHighDef {
		t.Fatalf("expected HD stream second, got %+v", streams[1])
	}
	if streams[2].URL != "https://cdn.example/r2.m3u8" {
		t.Fatalf("expected room order preserved, got %+v", streams[2])
	}

	fetches, errors := recorder.StreamRoomCounts()
	if fetches != 2 || errors != 0 {
		t.Fatalf("unexpected counts fetches=%d errors=%d", fetches, errors)
	}
}

func TestResolveIsolatesFailingRoom(t *testing.T) {
	recorder := metrics.NewRecorder()
	resolver := newTestResolver(recorder, func(req *http.Request) (*http.Response, error) {
		if req.URL.Path == "/room/1/detail.json" {
			return jsonResponse(http.StatusInternalServerError, ""), nil
		}
		return jsonResponse(http.StatusOK, `detail({"data":{"stream":{"m3u8":"https://cdn.example/r2.m3u8"}}});`), nil
	})

	streams := resolver.Resolve(context.Background(), []int{1, 2})
	if len(streams) != 1 {
		t.Fatalf("expected exactly one stream, got %+v", streams)
	}
	if streams[0].Tier != domain.TierStandard || streams[0].URL != "https://cdn.example/r2.m3u8" {
		t.Fatalf("unexpected stream %+v", streams[0])
	}

	fetches, errors := recorder.StreamRoomCounts()
	if fetches != 2 || errors != 1 {
		t.Fatalf("unexpected counts fetches=%d errors=%d", fetches, errors)
	}
}

func TestResolveEmptyRoomsMakesNoRequests(t *testing.T) {
	var calls int
	var mu sync.Mutex
	resolver := newTestResolver(nil, func(*http.Request) (*http.Response, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return jsonResponse(http.StatusOK, `detail({"data":{"stream":{}}});`), nil
	})

	if streams := resolver.Resolve(context.Background(), nil); streams != nil {
		t.Fatalf("expected nil streams, got %+v", streams)
	}
	if calls != 0 {
		t.Fatalf("expected no requests, got %d", calls)
	}
}

func TestResolvePreservesRoomOrderUnderFanOut(t *testing.T) {
	const rooms = 16
	resolver := newTestResolver(nil, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, fmt.Sprintf(`detail({"data":{"stream":{"m3u8":"https://cdn.example%s"}}});`, req.URL.Path)), nil
	})

	ids := make([]int, rooms)
	for i := range ids {
		ids[i] = i + 1
	}

	streams := resolver.Resolve(context.Background(), ids)
	if len(streams) != rooms {
		t.Fatalf("expected %d streams, got %d", rooms, len(streams))
	}
	for i, s := range streams {
		want := fmt.Sprintf("https://cdn.example/room/%d/detail.json", i+1)
		if s.URL != want {
			t.Fatalf("stream %d out of order: got %s want %s", i, s.URL, want)
		}
	}
}

func TestResolveRejectsUnwrappedBody(t *testing.T) {
	recorder := metrics.NewRecorder()
	resolver := newTestResolver(recorder, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"stream":{"m3u8":"https://cdn.example/raw.m3u8"}}}`), nil
	})

	if streams := resolver.Resolve(context.Background(), []int{7}); len(streams) != 0 {
		t.Fatalf("expected no streams from a non-JSONP body, got %+v", streams)
	}
	if _, errs := recorder.StreamRoomCounts(); errs != 1 {
		t.Fatalf("expected one recorded error, got %d", errs)
	}
}

func TestFetchRoomStreamsSingleRoom(t *testing.T) {
	recorder := metrics.NewRecorder()
	resolver := newTestResolver(recorder, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `detail({"data":{"stream":{"hdM3u8":"https://cdn.example/hd.m3u8"}}});`), nil
	})

	streams, err := resolver.FetchRoomStreams(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(streams) != 1 || streams[0].Tier != domain.TierHighDef {
		t.Fatalf("unexpected streams %+v", streams)
	}
}
