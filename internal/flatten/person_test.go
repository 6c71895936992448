package flatten

import (
	"testing"

	"github.com/pdiddy/orcid-engine/internal/jsontree"
)

const personFixture = `{
  "name": {
    "given-names": {"value": "Ada"},
    "family-name": {"value": "Lovelace"},
    "credit-name": {"value": "A. Lovelace"}
  },
  "biography": {"content": "Mathematician."},
  "keywords": {
    "keyword": [
      {"content": "computing"},
      {"content": null},
      {"content": "mathematics"}
    ]
  },
  "researcher-urls": {
    "researcher-url": [
      {"url": {"value": "https://example.org/ada"}},
      {"url": {"value": "https://example.org/notes"}}
    ]
  },
  "addresses": {
    "address": [
      {"country": {"value": "GB"}},
      {"country": {"value": "FR"}}
    ]
  }
}`

func TestPerson(t *testing.T) {
	rows := Person(decode(t, personFixture), testID)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want exactly 1", len(rows))
	}

	r := rows[0]
	if r.GivenNames != "Ada" || r.FamilyName != "Lovelace" || r.CreditName != "A. Lovelace" {
		t.Errorf("names = %+v", r)
	}
	if r.Biography != "Mathematician." {
		t.Errorf("Biography = %q", r.Biography)
	}
	// Absent entries are skipped during aggregation, not rendered as gaps.
	if r.Keywords != "computing; mathematics" {
		t.Errorf("Keywords = %q", r.Keywords)
	}
	if r.ResearcherURLs != "https://example.org/ada; https://example.org/notes" {
		t.Errorf("ResearcherURLs = %q", r.ResearcherURLs)
	}
	// Only the first address contributes the country.
	if r.Country != "GB" {
		t.Errorf("Country = %q, want first address only", r.Country)
	}
}

func TestPersonAlwaysOneRow(t *testing.T) {
	for _, fixture := range []string{`{}`, `{"name": null}`} {
		rows := Person(decode(t, fixture), testID)
		if len(rows) != 1 {
			t.Fatalf("Person(%q) produced %d rows, want exactly 1", fixture, len(rows))
		}
		if rows[0].ORCID != testID {
			t.Errorf("ORCID = %q", rows[0].ORCID)
		}
		if rows[0].GivenNames != "" || rows[0].Keywords != "" {
			t.Errorf("sparse person should have empty optionals: %+v", rows[0])
		}
	}

	rows := Person(jsontree.Absent, testID)
	if len(rows) != 1 {
		t.Fatalf("Person(Absent) produced %d rows, want exactly 1", len(rows))
	}
}
