package results

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"live-match-service/internal/domain"
	"live-match-service/internal/names"
)

// ErrNoTable indicates the page did not carry the expected results table;
// treated like any other upstream failure so the cache layer can stale-serve.
var ErrNoTable = errors.New("results: results table not found")

const (
	// The page carries exactly one table tagged with this attribute.
	tableSelector = `table[id="livescores"]`
	// Row kinds are distinguished by a class marker substring: header rows
	// name the league/event and apply to every data row until the next
	// header.
	leagueRowMarker = "subtitle"
	matchRowMarker  = "matchrow"
)

// parseResults walks the results table. Header rows update the running
// league; data rows carry cells [unused, home, fulltime, away, halftime].
// Rows that are neither are ignored.
func parseResults(doc *goquery.Document) ([]domain.ResultRow, error) {
	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	rows := make([]domain.ResultRow, 0)
	currentLeague := ""

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		class := tr.AttrOr("class", "")
		switch {
		case strings.Contains(class, leagueRowMarker):
			currentLeague = names.ApplyAliases(cellText(tr))
		case strings.Contains(class, matchRowMarker):
			cells := tr.Find("td")
			if cells.Length() < 5 {
				return
			}
			home := cellText(cells.Eq(1))
			fullTime := cellText(cells.Eq(2))
			away := cellText(cells.Eq(3))
			halfTime := cellText(cells.Eq(4))
			if home == "" || away == "" {
				return
			}
			rows = append(rows, domain.ResultRow{
				League:   currentLeague,
				Home:     names.ApplyAliases(home),
				Away:     names.ApplyAliases(away),
				FullTime: fullTime,
				HalfTime: halfTime,
			})
		}
	})

	return rows, nil
}

// cellText extracts the selection's text with markup stripped and whitespace
// collapsed.
func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
