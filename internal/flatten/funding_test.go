package flatten

import (
	"testing"
)

const fundingsFixture = `{
  "group": [
    {
      "funding-summary": [
        {
          "put-code": 555,
          "title": {"title": {"value": "Grant Alpha"}},
          "type": "grant",
          "organization": {"name": "National Science Agency"},
          "start-date": {"year": {"value": "2019"}},
          "end-date": {"year": {"value": "2022"}, "month": {"value": "12"}},
          "amount": {"value": "150000", "currency-code": "EUR"}
        }
      ]
    },
    {
      "funding-summary": [
        {
          "put-code": 556,
          "title": {"title": {"value": "Award Beta"}},
          "type": "award",
          "organization": {"name": "Foundation"}
        }
      ]
    }
  ]
}`

func TestFundings(t *testing.T) {
	rows := Fundings(decode(t, fundingsFixture), testID)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	r := rows[0]
	if r.RecordID != "555" || r.Title != "Grant Alpha" || r.Type != "grant" {
		t.Errorf("rows[0] = %+v", r)
	}
	if r.Organization != "National Science Agency" {
		t.Errorf("Organization = %q", r.Organization)
	}
	if r.StartDate != "2019" || r.EndDate != "2022-12" {
		t.Errorf("dates = %q .. %q", r.StartDate, r.EndDate)
	}
	if r.Amount != "150000" || r.Currency != "EUR" {
		t.Errorf("amount = %q %q", r.Amount, r.Currency)
	}
}

func TestFundingsAbsentAmount(t *testing.T) {
	rows := Fundings(decode(t, fundingsFixture), testID)
	// No amount sub-object leaves both columns empty rather than failing.
	if rows[1].Amount != "" || rows[1].Currency != "" {
		t.Errorf("rows[1] amount = %q %q, want empty", rows[1].Amount, rows[1].Currency)
	}
}

func TestFundingsEmptyInputs(t *testing.T) {
	for _, fixture := range []string{`{}`, `{"group": []}`, `{"group": null}`} {
		rows := Fundings(decode(t, fixture), testID)
		if rows == nil || len(rows) != 0 {
			t.Errorf("Fundings(%q) = %v, want empty non-nil set", fixture, rows)
		}
	}
}
