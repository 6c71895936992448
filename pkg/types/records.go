// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the flat, schema-stable record shapes produced by
// the flatteners, plus shared configuration structs.
//
// Every row type pairs with a RowSet slice type whose column set is fixed:
// a section with no data yields a zero-row set that still declares the
// full column list, never a row of empty values and never a missing
// column. Optional fields are empty strings when the source record lacks
// them.
package types

// RowSet is a fixed-schema collection of flattened rows. Consumers render
// headers from Columns regardless of Len, so the zero-row case keeps its
// schema.
type RowSet interface {
	Columns() []string
	Rows() [][]string
	Len() int
}

// AffiliationRecord is the shared row shape for the affiliation-style
// sections: employments, educations, distinctions, invited positions,
// memberships, qualifications, and services.
type AffiliationRecord struct {
	// ORCID is the canonical researcher identifier the row belongs to.
	ORCID string `json:"orcid" yaml:"orcid"`

	// RecordID is the registry's put-code for the summary, as a string.
	RecordID string `json:"record_id" yaml:"record_id"`

	// Organization is the affiliation's organization name.
	Organization string `json:"organization" yaml:"organization"`

	// Department is the department name, when recorded.
	Department string `json:"department,omitempty" yaml:"department,omitempty"`

	// Role is the role or title held, when recorded.
	Role string `json:"role,omitempty" yaml:"role,omitempty"`

	// StartDate and EndDate are partial ISO-8601 dates ("2020",
	// "2020-03", or "2020-03-15"), empty when unrecorded.
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" yaml:"end_date,omitempty"`

	// City, Region, and Country locate the organization, when recorded.
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	Region  string `json:"region,omitempty" yaml:"region,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// AffiliationColumns is the declared schema for affiliation-style sections.
var AffiliationColumns = []string{
	"orcid", "record_id", "organization", "department", "role",
	"start_date", "end_date", "city", "region", "country",
}

// AffiliationRows is the RowSet for affiliation-style sections.
type AffiliationRows []AffiliationRecord

func (r AffiliationRows) Columns() []string { return AffiliationColumns }
func (r AffiliationRows) Len() int          { return len(r) }

func (r AffiliationRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{
			rec.ORCID, rec.RecordID, rec.Organization, rec.Department, rec.Role,
			rec.StartDate, rec.EndDate, rec.City, rec.Region, rec.Country,
		}
	}
	return out
}

// WorkRecord is one research output (publication, dataset, etc.).
type WorkRecord struct {
	ORCID           string `json:"orcid" yaml:"orcid"`
	RecordID        string `json:"record_id" yaml:"record_id"`
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	Type            string `json:"type,omitempty" yaml:"type,omitempty"`
	PublicationDate string `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`
	Journal         string `json:"journal,omitempty" yaml:"journal,omitempty"`
	DOI             string `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL             string `json:"url,omitempty" yaml:"url,omitempty"`
}

// WorkColumns is the declared schema for the works section.
var WorkColumns = []string{
	"orcid", "record_id", "title", "type", "publication_date",
	"journal", "doi", "url",
}

// WorkRows is the RowSet for the works section.
type WorkRows []WorkRecord

func (r WorkRows) Columns() []string { return WorkColumns }
func (r WorkRows) Len() int          { return len(r) }

func (r WorkRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{
			rec.ORCID, rec.RecordID, rec.Title, rec.Type,
			rec.PublicationDate, rec.Journal, rec.DOI, rec.URL,
		}
	}
	return out
}

// FundingRecord is one funding item (grant, award, contract).
type FundingRecord struct {
	ORCID        string `json:"orcid" yaml:"orcid"`
	RecordID     string `json:"record_id" yaml:"record_id"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Type         string `json:"type,omitempty" yaml:"type,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	StartDate    string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Amount       string `json:"amount,omitempty" yaml:"amount,omitempty"`
	Currency     string `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// FundingColumns is the declared schema for the fundings section.
var FundingColumns = []string{
	"orcid", "record_id", "title", "type", "organization",
	"start_date", "end_date", "amount", "currency",
}

// FundingRows is the RowSet for the fundings section.
type FundingRows []FundingRecord

func (r FundingRows) Columns() []string { return FundingColumns }
func (r FundingRows) Len() int          { return len(r) }

func (r FundingRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{
			rec.ORCID, rec.RecordID, rec.Title, rec.Type, rec.Organization,
			rec.StartDate, rec.EndDate, rec.Amount, rec.Currency,
		}
	}
	return out
}

// PeerReviewRecord is one completed peer-review activity.
type PeerReviewRecord struct {
	ORCID          string `json:"orcid" yaml:"orcid"`
	RecordID       string `json:"record_id" yaml:"record_id"`
	ReviewerRole   string `json:"reviewer_role,omitempty" yaml:"reviewer_role,omitempty"`
	ReviewType     string `json:"review_type,omitempty" yaml:"review_type,omitempty"`
	CompletionDate string `json:"completion_date,omitempty" yaml:"completion_date,omitempty"`
	Organization   string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// PeerReviewColumns is the declared schema for the peer-reviews section.
var PeerReviewColumns = []string{
	"orcid", "record_id", "reviewer_role", "review_type",
	"completion_date", "organization",
}

// PeerReviewRows is the RowSet for the peer-reviews section.
type PeerReviewRows []PeerReviewRecord

func (r PeerReviewRows) Columns() []string { return PeerReviewColumns }
func (r PeerReviewRows) Len() int          { return len(r) }

func (r PeerReviewRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{
			rec.ORCID, rec.RecordID, rec.ReviewerRole, rec.ReviewType,
			rec.CompletionDate, rec.Organization,
		}
	}
	return out
}

// ResearchResourceRecord is one research-resource usage item.
type ResearchResourceRecord struct {
	ORCID         string `json:"orcid" yaml:"orcid"`
	RecordID      string `json:"record_id" yaml:"record_id"`
	ProposalTitle string `json:"proposal_title,omitempty" yaml:"proposal_title,omitempty"`
	StartDate     string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// ResearchResourceColumns is the declared schema for research resources.
var ResearchResourceColumns = []string{
	"orcid", "record_id", "proposal_title", "start_date", "end_date",
}

// ResearchResourceRows is the RowSet for the research-resources section.
type ResearchResourceRows []ResearchResourceRecord

func (r ResearchResourceRows) Columns() []string { return ResearchResourceColumns }
func (r ResearchResourceRows) Len() int          { return len(r) }

func (r ResearchResourceRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{rec.ORCID, rec.RecordID, rec.ProposalTitle, rec.StartDate, rec.EndDate}
	}
	return out
}

// PersonSummary is the single biographical row for one researcher.
// Multi-valued sub-fields (keywords, researcher URLs) are aggregated into
// one "; "-delimited column each.
type PersonSummary struct {
	ORCID          string `json:"orcid" yaml:"orcid"`
	GivenNames     string `json:"given_names,omitempty" yaml:"given_names,omitempty"`
	FamilyName     string `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	CreditName     string `json:"credit_name,omitempty" yaml:"credit_name,omitempty"`
	Biography      string `json:"biography,omitempty" yaml:"biography,omitempty"`
	Keywords       string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	ResearcherURLs string `json:"researcher_urls,omitempty" yaml:"researcher_urls,omitempty"`
	Country        string `json:"country,omitempty" yaml:"country,omitempty"`
}

// PersonColumns is the declared schema for the person section.
var PersonColumns = []string{
	"orcid", "given_names", "family_name", "credit_name", "biography",
	"keywords", "researcher_urls", "country",
}

// PersonRows is the RowSet for the person section. The flattener always
// produces exactly one row, even for a wholly absent input.
type PersonRows []PersonSummary

func (r PersonRows) Columns() []string { return PersonColumns }
func (r PersonRows) Len() int          { return len(r) }

func (r PersonRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{
			rec.ORCID, rec.GivenNames, rec.FamilyName, rec.CreditName,
			rec.Biography, rec.Keywords, rec.ResearcherURLs, rec.Country,
		}
	}
	return out
}

// SearchResultRow is one registry search hit. The total match count for
// the response travels beside the row set, not inside any row.
type SearchResultRow struct {
	ORCID      string `json:"orcid" yaml:"orcid"`
	GivenNames string `json:"given_names,omitempty" yaml:"given_names,omitempty"`
	FamilyName string `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	CreditName string `json:"credit_name,omitempty" yaml:"credit_name,omitempty"`
	OtherNames string `json:"other_names,omitempty" yaml:"other_names,omitempty"`
}

// SearchColumns is the declared schema for search results.
var SearchColumns = []string{
	"orcid", "given_names", "family_name", "credit_name", "other_names",
}

// SearchRows is the RowSet for registry search results.
type SearchRows []SearchResultRow

func (r SearchRows) Columns() []string { return SearchColumns }
func (r SearchRows) Len() int          { return len(r) }

func (r SearchRows) Rows() [][]string {
	out := make([][]string, len(r))
	for i, rec := range r {
		out[i] = []string{rec.ORCID, rec.GivenNames, rec.FamilyName, rec.CreditName, rec.OtherNames}
	}
	return out
}
