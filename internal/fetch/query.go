// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/orcid-engine/internal/flatten"
	"github.com/pdiddy/orcid-engine/internal/registry"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

const (
	// defaultRows is the result count when the caller does not specify one.
	defaultRows = 20

	// maxRows is the registry's per-request row cap.
	maxRows = 1000

	// maxOffset bounds start+rows on the expanded search endpoint.
	maxOffset = 11000
)

// searchEndpoint is the registry search path. The expanded endpoint
// returns name fields inline so hits need no follow-up record fetch.
const searchEndpoint = "expanded-search"

// Query holds fielded registry search parameters. Fielded terms are
// combined with AND; FreeText is passed through as-is.
type Query struct {
	FreeText    string
	GivenName   string
	FamilyName  string
	Affiliation string
	DOI         string
	Email       string
	Keyword     string
}

// IsEmpty reports whether the query contains no searchable terms.
func (q Query) IsEmpty() bool {
	return q.FreeText == "" && q.GivenName == "" && q.FamilyName == "" &&
		q.Affiliation == "" && q.DOI == "" && q.Email == "" && q.Keyword == ""
}

// Build renders the registry's Solr-style query string. Fielded values are
// quoted so embedded spaces survive.
func (q Query) Build() string {
	var parts []string
	add := func(field, val string) {
		if val != "" {
			parts = append(parts, fmt.Sprintf("%s:%q", field, escapeQueryValue(val)))
		}
	}
	add("given-names", q.GivenName)
	add("family-name", q.FamilyName)
	add("affiliation-org-name", q.Affiliation)
	add("digital-object-ids", q.DOI)
	add("email", q.Email)
	add("keyword", q.Keyword)
	if q.FreeText != "" {
		parts = append(parts, q.FreeText)
	}
	return strings.Join(parts, " AND ")
}

func escapeQueryValue(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// SearchOutput couples the parsed rows with the registry's total match
// count, which describes the whole result set rather than any row.
type SearchOutput struct {
	Rows         types.SearchRows
	TotalMatches int
}

// Search runs a registry search and parses the response. Start and rows
// pass through as paging parameters with the registry's caps applied.
func Search(ctx context.Context, client *registry.Client, q Query, start, rows int, token string) (SearchOutput, error) {
	if q.IsEmpty() {
		return SearchOutput{}, fmt.Errorf("query is empty: provide free text or fielded terms")
	}
	if rows <= 0 {
		rows = defaultRows
	}
	if rows > maxRows {
		rows = maxRows
	}
	if start < 0 {
		start = 0
	}
	if start+rows > maxOffset {
		rows = maxOffset - start
		if rows <= 0 {
			return SearchOutput{}, fmt.Errorf("start %d exceeds the registry's paging limit of %d", start, maxOffset)
		}
	}

	v, err := client.Search(ctx, searchEndpoint, q.Build(), start, rows, token)
	if err != nil {
		return SearchOutput{}, err
	}
	parsed, total := flatten.ParseSearch(v)
	return SearchOutput{Rows: parsed, TotalMatches: total}, nil
}
