// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flatten

import (
	"strings"

	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// resultKeys lists the candidate top-level result arrays, newest response
// shape first. The expanded endpoint returns "expanded-result"; the legacy
// endpoint returns "result".
var resultKeys = []string{"expanded-result", "result"}

// ParseSearch extracts rows and the total match count from a registry
// search response. The total comes from the top-level "num-found" field
// and defaults to 0 when absent. When both result arrays are absent or
// empty the row set is empty while the total stands as reported: a nonzero
// total beside zero parseable rows is accepted as zero usable rows rather
// than rejected.
func ParseSearch(v jsontree.Value) (types.SearchRows, int) {
	total, _ := v.Get("num-found").Int()

	var results []jsontree.Value
	for _, key := range resultKeys {
		if seq := v.Get(key).Seq(); len(seq) > 0 {
			results = seq
			break
		}
	}

	rows := types.SearchRows{}
	for _, r := range results {
		id := r.Get("orcid-identifier", "path").Str()
		if id == "" {
			id = firstScalar(r.Get("orcid-id"))
		}
		rows = append(rows, types.SearchResultRow{
			ORCID:      id,
			GivenNames: firstScalar(r.Get("given-names")),
			FamilyName: firstScalar(r.Get("family-names")),
			CreditName: firstScalar(r.Get("credit-name")),
			OtherNames: joinScalars(r.Get("other-name")),
		})
	}
	return rows, total
}

// firstScalar tolerates a field encoded either as a bare scalar or as a
// list of scalars, returning the first value present.
func firstScalar(v jsontree.Value) string {
	if s := v.Str(); s != "" {
		return s
	}
	if seq := v.Seq(); len(seq) > 0 {
		return seq[0].Str()
	}
	return ""
}

// joinScalars joins a scalar-or-list field's non-empty values with "; ".
func joinScalars(v jsontree.Value) string {
	if s := v.Str(); s != "" {
		return s
	}
	var parts []string
	for _, e := range v.Seq() {
		if s := e.Str(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}
