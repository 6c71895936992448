// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// ResearchResources flattens the research-resources section into one row
// per group, taking the first summary per group.
func ResearchResources(v jsontree.Value, orcid string) types.ResearchResourceRows {
	rows := types.ResearchResourceRows{}
	for _, group := range v.Get("group").Seq() {
		summaries := group.Get("research-resource-summary").Seq()
		if len(summaries) == 0 {
			continue
		}
		s := summaries[0]
		rows = append(rows, types.ResearchResourceRecord{
			ORCID:         orcid,
			RecordID:      s.Get("put-code").Str(),
			ProposalTitle: s.Get("proposal", "title", "title", "value").Str(),
			StartDate:     jsontree.AssembleDate(s.Get("proposal", "start-date")),
			EndDate:       jsontree.AssembleDate(s.Get("proposal", "end-date")),
		})
	}
	return rows
}
