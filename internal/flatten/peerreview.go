// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// PeerReviews flattens the peer-reviews section. The registry nests this
// one level deeper than the other activity sections: group, then
// peer-review-group, then peer-review-summary. Every summary becomes a
// row; unlike works, the summaries here are distinct review events, not
// duplicates of one record.
func PeerReviews(v jsontree.Value, orcid string) types.PeerReviewRows {
	rows := types.PeerReviewRows{}
	for _, group := range v.Get("group").Seq() {
		for _, inner := range group.Get("peer-review-group").Seq() {
			for _, s := range inner.Get("peer-review-summary").Seq() {
				rows = append(rows, types.PeerReviewRecord{
					ORCID:          orcid,
					RecordID:       s.Get("put-code").Str(),
					ReviewerRole:   s.Get("reviewer-role").Str(),
					ReviewType:     s.Get("review-type").Str(),
					CompletionDate: jsontree.AssembleDate(s.Get("completion-date")),
					Organization:   s.Get("convening-organization", "name").Str(),
				})
			}
		}
	}
	return rows
}
