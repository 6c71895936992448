// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// Fundings flattens the fundings section into one row per group, taking
// the first funding summary per group. Amount and currency come from the
// nested amount object and stay empty when it is absent.
func Fundings(v jsontree.Value, orcid string) types.FundingRows {
	rows := types.FundingRows{}
	for _, group := range v.Get("group").Seq() {
		summaries := group.Get("funding-summary").Seq()
		if len(summaries) == 0 {
			continue
		}
		s := summaries[0]
		rows = append(rows, types.FundingRecord{
			ORCID:        orcid,
			RecordID:     s.Get("put-code").Str(),
			Title:        s.Get("title", "title", "value").Str(),
			Type:         s.Get("type").Str(),
			Organization: s.Get("organization", "name").Str(),
			StartDate:    jsontree.AssembleDate(s.Get("start-date")),
			EndDate:      jsontree.AssembleDate(s.Get("end-date")),
			Amount:       s.Get("amount", "value").Str(),
			Currency:     s.Get("amount", "currency-code").Str(),
		})
	}
	return rows
}
