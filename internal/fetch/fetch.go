// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch maps public section names onto registry endpoints and
// flatteners, and runs sequential batch retrieval with per-item error
// isolation.
package fetch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/orcid-engine/internal/flatten"
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/internal/orcidid"
	"github.com/pdiddy/orcid-engine/internal/registry"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// Section ties one public section name to its registry endpoint and the
// flattener that converts its payload into rows.
type Section struct {
	Name     string
	Endpoint string
	Flatten  func(v jsontree.Value, orcid string) types.RowSet
}

// sections lists every supported section. The affiliation-style sections
// share one flattener; the remaining sections each have their own.
var sections = []Section{
	{"employments", "employments", affiliationRows},
	{"educations", "educations", affiliationRows},
	{"distinctions", "distinctions", affiliationRows},
	{"invited-positions", "invited-positions", affiliationRows},
	{"memberships", "memberships", affiliationRows},
	{"qualifications", "qualifications", affiliationRows},
	{"services", "services", affiliationRows},
	{"works", "works", func(v jsontree.Value, id string) types.RowSet { return flatten.Works(v, id) }},
	{"fundings", "fundings", func(v jsontree.Value, id string) types.RowSet { return flatten.Fundings(v, id) }},
	{"peer-reviews", "peer-reviews", func(v jsontree.Value, id string) types.RowSet { return flatten.PeerReviews(v, id) }},
	{"research-resources", "research-resources", func(v jsontree.Value, id string) types.RowSet { return flatten.ResearchResources(v, id) }},
	{"person", "person", func(v jsontree.Value, id string) types.RowSet { return flatten.Person(v, id) }},
}

func affiliationRows(v jsontree.Value, orcid string) types.RowSet {
	return flatten.Affiliations(v, orcid)
}

// SectionByName looks up a section by its public name.
func SectionByName(name string) (Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// SectionNames returns the supported section names in listing order.
func SectionNames() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

// FetchRows validates and canonicalizes the identifier, retrieves one
// section, and flattens it. An unknown section or invalid identifier fails
// before any network traffic.
func FetchRows(ctx context.Context, client *registry.Client, identifier, section, token string) (types.RowSet, error) {
	sec, ok := SectionByName(section)
	if !ok {
		return nil, fmt.Errorf("unknown section %q (supported: %s)", section, strings.Join(SectionNames(), ", "))
	}
	id, err := orcidid.Normalize(identifier)
	if err != nil {
		return nil, err
	}
	v, err := client.FetchSection(ctx, id, sec.Endpoint, token)
	if err != nil {
		return nil, err
	}
	return sec.Flatten(v, id), nil
}

// BatchOptions controls a batch run. Delay and FailFast come from the
// shared retrieval settings; the token rides alongside because
// credentials stay an explicit per-call parameter.
type BatchOptions struct {
	types.FetchConfig

	// Token is the bearer token forwarded on every request, if any.
	Token string
}

// BatchResult aggregates rows across identifiers. Columns is populated
// from the section schema even when every identifier fails, so downstream
// output keeps its header.
type BatchResult struct {
	Columns []string
	Rows    [][]string
	Fetched int
	Failed  int
	Errors  []string
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int { return r.Fetched + r.Failed }

// HasFailures reports whether any identifier failed.
func (r BatchResult) HasFailures() bool { return r.Failed > 0 }

// FetchBatch retrieves one section for each identifier in order, printing
// per-item status to w. The loop is strictly sequential. A failed
// identifier is recorded and the loop proceeds, unless FailFast is set, in
// which case the error is returned alongside the partial result.
func FetchBatch(ctx context.Context, client *registry.Client, identifiers []string, section string, opts BatchOptions, w io.Writer) (BatchResult, error) {
	sec, ok := SectionByName(section)
	if !ok {
		return BatchResult{}, fmt.Errorf("unknown section %q (supported: %s)", section, strings.Join(SectionNames(), ", "))
	}

	result := BatchResult{Columns: sec.Flatten(jsontree.Absent, "").Columns()}
	for i, raw := range identifiers {
		if i > 0 && opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(opts.Delay):
			}
		}
		rs, err := FetchRows(ctx, client, raw, section, opts.Token)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", raw, err)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", raw, err))
			if opts.FailFast {
				return result, err
			}
			continue
		}
		fmt.Fprintf(w, "fetched: %s (%d rows)\n", raw, rs.Len())
		result.Fetched++
		result.Rows = append(result.Rows, rs.Rows()...)
	}

	fmt.Fprintf(w, "\nBatch summary: %d fetched, %d failed (total: %d)\n",
		result.Fetched, result.Failed, result.Total())
	return result, nil
}
