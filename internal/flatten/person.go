// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// Person flattens the biographical section into exactly one row, even for
// a wholly absent input. Keywords and researcher URLs are aggregated into
// "; "-delimited columns, skipping absent entries. When several addresses
// exist, only the first contributes the country.
func Person(v jsontree.Value, orcid string) types.PersonRows {
	row := types.PersonSummary{
		ORCID:          orcid,
		GivenNames:     v.Get("name", "given-names", "value").Str(),
		FamilyName:     v.Get("name", "family-name", "value").Str(),
		CreditName:     v.Get("name", "credit-name", "value").Str(),
		Biography:      v.Get("biography", "content").Str(),
		Keywords:       joinValues(v.Get("keywords", "keyword"), "content"),
		ResearcherURLs: joinValues(v.Get("researcher-urls", "researcher-url"), "url", "value"),
	}
	if addrs := v.Get("addresses", "address").Seq(); len(addrs) > 0 {
		row.Country = addrs[0].Get("country", "value").Str()
	}
	return types.PersonRows{row}
}
