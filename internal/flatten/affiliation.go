// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flatten converts the registry's nested section payloads into
// fixed-schema row sets. All field access goes through jsontree, so a
// missing branch degrades to an empty column, and a malformed entry is
// skipped rather than escalated: one bad record never aborts a result set.
package flatten

import (
	"strings"

	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// summaryKeys lists the candidate summary-type keys for affiliation-style
// sections, tried in priority order. The first key present in a summary
// entry wins; an entry carrying none of them produces no row.
var summaryKeys = []string{
	"employment-summary",
	"education-summary",
	"distinction-summary",
	"invited-position-summary",
	"membership-summary",
	"qualification-summary",
	"service-summary",
}

// Affiliations flattens an affiliation-style section (employments,
// educations, distinctions, invited positions, memberships,
// qualifications, services) into one row per summary. An absent or empty
// affiliation-group field yields the zero-row set with the full schema.
func Affiliations(v jsontree.Value, orcid string) types.AffiliationRows {
	rows := types.AffiliationRows{}
	for _, group := range v.Get("affiliation-group").Seq() {
		for _, entry := range group.Get("summaries").Seq() {
			summary := resolveSummary(entry)
			if summary.IsAbsent() {
				continue
			}
			rows = append(rows, types.AffiliationRecord{
				ORCID:        orcid,
				RecordID:     summary.Get("put-code").Str(),
				Organization: summary.Get("organization", "name").Str(),
				Department:   summary.Get("department-name").Str(),
				Role:         summary.Get("role-title").Str(),
				StartDate:    jsontree.AssembleDate(summary.Get("start-date")),
				EndDate:      jsontree.AssembleDate(summary.Get("end-date")),
				City:         summary.Get("organization", "address", "city").Str(),
				Region:       summary.Get("organization", "address", "region").Str(),
				Country:      summary.Get("organization", "address", "country").Str(),
			})
		}
	}
	return rows
}

// resolveSummary tries each known summary-type key in order and returns
// the first present value.
func resolveSummary(entry jsontree.Value) jsontree.Value {
	for _, key := range summaryKeys {
		if s := entry.Get(key); !s.IsAbsent() {
			return s
		}
	}
	return jsontree.Absent
}

// joinValues projects every element of a sequence node through path and
// joins the non-empty results with "; ", skipping absent entries.
func joinValues(seq jsontree.Value, path ...string) string {
	var parts []string
	for _, e := range seq.Seq() {
		if s := e.Get(path...).Str(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}
