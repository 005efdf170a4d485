package results

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"live-match-service/internal/sources"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func htmlResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const samplePage = `
<html><body>
<table id="other"><tr><td>noise</td></tr></table>
<table id="livescores">
  <tr class="subtitle"><td colspan="5">EPL</td></tr>
  <tr class="matchrow odd"><td>19:45</td><td><b>Arsenal</b></td><td>3 - 0</td><td>Chelsea</td><td>(1 - 0)</td></tr>
  <tr class="matchrow"><td>20:00</td><td>Man Utd</td><td>-</td><td>Spurs</td><td>-</td></tr>
  <tr class="advert"><td colspan="5">buy things</td></tr>
  <tr class="matchrow"><td>21:00</td><td></td><td>1 - 1</td><td>Ghost FC</td><td>(0 - 0)</td></tr>
  <tr class="subtitle"><td colspan="5">UEFA CL</td></tr>
  <tr class="matchrow"><td>22:00</td><td>Real   Madrid</td><td>2 - 1</td><td>Liverpool</td><td>(1 - 1)</td></tr>
</table>
</body></html>`

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		URL:        "http://results.example/live",
		HTTPClient: &http.Client{Transport: rt},
		Timeout:    time.Second,
	})
}

func TestFetchResultsParsesRows(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.String() != "http://results.example/live" {
			t.Fatalf("unexpected url %s", req.URL)
		}
		return htmlResponse(samplePage), nil
	})

	rows, err := client.FetchResults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}

	first := rows[0]
	if first.League != "epl" || first.Home != "arsenal" || first.Away != "chelsea" {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.FullTime != "3 - 0" || first.HalfTime != "(1 - 0)" {
		t.Fatalf("unexpected first row scores %+v", first)
	}

	// League header carries into subsequent rows; alias substitution applies.
	if rows[1].League != "epl" || rows[1].Home != "man united" {
		t.Fatalf("unexpected second row %+v", rows[1])
	}

	// The header after the skipped row switches the league.
	if rows[2].League != "uefa cl" || rows[2].Home != "real madrid" {
		t.Fatalf("unexpected third row %+v", rows[2])
	}
}

func TestFetchResultsSkipsRowsMissingTeams(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return htmlResponse(samplePage), nil
	})

	rows, err := client.FetchResults(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range rows {
		if row.Home == "" || row.Away == "" {
			t.Fatalf("row with empty team emitted: %+v", row)
		}
	}
}

func TestFetchResultsMissingTableErrors(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return htmlResponse("<html><body><p>maintenance</p></body></html>"), nil
	})

	if _, err := client.FetchResults(context.Background()); !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

func TestFetchResultsUpstreamFailures(t *testing.T) {
	client := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	if _, err := client.FetchResults(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}

	client = newTestClient(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
		}, nil
	})
	if _, err := client.FetchResults(context.Background()); err == nil {
		t.Fatalf("expected status error")
	}
}

func TestFetchResultsUnconfiguredURL(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchResults(context.Background()); !errors.Is(err, sources.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
