// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"strings"

	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// Works flattens the works section into one row per group. A group may
// carry several summaries of the same underlying work contributed by
// different sources; only the first summary per group becomes a row, so
// one work never yields duplicate rows.
func Works(v jsontree.Value, orcid string) types.WorkRows {
	rows := types.WorkRows{}
	for _, group := range v.Get("group").Seq() {
		summaries := group.Get("work-summary").Seq()
		if len(summaries) == 0 {
			continue
		}
		s := summaries[0]
		rows = append(rows, types.WorkRecord{
			ORCID:           orcid,
			RecordID:        s.Get("put-code").Str(),
			Title:           s.Get("title", "title", "value").Str(),
			Type:            s.Get("type").Str(),
			PublicationDate: jsontree.AssembleDate(s.Get("publication-date")),
			Journal:         s.Get("journal-title", "value").Str(),
			DOI:             workDOI(s),
			URL:             s.Get("url", "value").Str(),
		})
	}
	return rows
}

// workDOI scans the summary's external identifier list and returns the
// value of the first entry typed "doi". No such entry leaves the DOI
// column empty.
func workDOI(summary jsontree.Value) string {
	for _, ext := range summary.Get("external-ids", "external-id").Seq() {
		if strings.EqualFold(ext.Get("external-id-type").Str(), "doi") {
			return ext.Get("external-id-value").Str()
		}
	}
	return ""
}
