package orcidid

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeAcceptedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical dashed", "0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"bare digits", "0000000218250097", "0000-0002-1825-0097"},
		{"url prefixed", "https://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"http url", "http://orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"uppercase host", "HTTPS://ORCID.ORG/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"www host", "https://www.orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"sandbox host", "https://sandbox.orcid.org/0000-0002-1825-0097", "0000-0002-1825-0097"},
		{"checksum X", "0000-0002-1694-233X", "0000-0002-1694-233X"},
		{"lowercase checksum", "0000-0002-1694-233x", "0000-0002-1694-233X"},
		{"surrounding whitespace", "  0000-0002-1825-0097  ", "0000-0002-1825-0097"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"0000-0002-1825-0097",
		"0000000218250097",
		"https://orcid.org/0000-0002-1694-233X",
	}
	for _, in := range inputs {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)): %v", in, err)
		}
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"0000-0002-1825-009",    // 15 characters
		"0000-0002-1825-00972",  // 17 characters
		"0000-0002-1825-009Z",   // bad checksum letter
		"0000-X002-1825-0097",   // X not in final position
		"abcd-efgh-ijkl-mnop",   // letters
		"10.1234/example.doi",   // a DOI, not an iD
		"https://example.org/0000-0002-1825-0097", // foreign host keeps its prefix
	}
	for _, in := range inputs {
		if _, err := Normalize(in); err == nil {
			t.Errorf("Normalize(%q) should fail", in)
		} else {
			var invalid *InvalidIdentifierError
			if !errors.As(err, &invalid) {
				t.Errorf("Normalize(%q) error = %T, want *InvalidIdentifierError", in, err)
			}
		}
	}
}

func TestNormalizeErrorCarriesInput(t *testing.T) {
	_, err := Normalize("not-an-id")
	var invalid *InvalidIdentifierError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %T, want *InvalidIdentifierError", err)
	}
	if invalid.Input != "not-an-id" {
		t.Errorf("Input = %q, want the offending input", invalid.Input)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid", "0000-0002-1825-0097", true},
		{"valid with X", "0000-0002-1694-233X", true},
		{"undashed rejected", "0000000218250097", false},
		{"lowercase x rejected", "0000-0002-1694-233x", false},
		{"empty", "", false},
		{"multiple ids", "0000-0002-1825-0097 0000-0002-1694-233X", false},
		{"comma separated", "0000-0002-1825-0097,0000-0002-1694-233X", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.id, false)
			if err != nil {
				t.Fatalf("Validate(failFast=false) returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidateFailFast(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantReason string
	}{
		{"empty", "", "empty"},
		{"multiple", "0000-0002-1825-0097 0000-0002-1694-233X", "multiple"},
		{"mismatch", "0000000218250097", "DDDD-DDDD-DDDD-DDDC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Validate(tt.id, true)
			if ok || err == nil {
				t.Fatalf("Validate(%q, failFast) = %v, %v; want false with error", tt.id, ok, err)
			}
			var invalid *InvalidIdentifierError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %T, want *InvalidIdentifierError", err)
			}
			if !strings.Contains(invalid.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want it to mention %q", invalid.Reason, tt.wantReason)
			}
		})
	}

	ok, err := Validate("0000-0002-1825-0097", true)
	if !ok || err != nil {
		t.Errorf("Validate(valid, failFast) = %v, %v; want true, nil", ok, err)
	}
}
