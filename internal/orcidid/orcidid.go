// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orcidid canonicalizes and validates ORCID iDs. The registry
// accepts three input shapes (dashed, bare 16-character, and URL-prefixed);
// Normalize is the single point that reduces all of them to the canonical
// dashed form so every caller behaves identically.
package orcidid

import (
	"fmt"
	"regexp"
	"strings"
)

// canonicalPattern matches the dashed canonical form,
// e.g. "0000-0002-1825-0097".
var canonicalPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)

// barePattern matches the 16-character body after prefix and separator
// stripping: 15 digits plus a digit-or-X checksum character.
var barePattern = regexp.MustCompile(`^\d{15}[0-9X]$`)

// urlPrefixPattern strips the registry URL prefix, case-insensitively.
// Both the production and sandbox hosts are accepted.
var urlPrefixPattern = regexp.MustCompile(`(?i)^https?://(?:www\.)?(?:sandbox\.)?orcid\.org/`)

// separatorStripper removes the punctuation people paste along with iDs.
var separatorStripper = strings.NewReplacer("-", "", "–", "", "—", "", " ", "", "\t", "")

// InvalidIdentifierError reports input that is not an ORCID iD in any
// accepted shape. The offending input is carried for diagnostics.
type InvalidIdentifierError struct {
	Input  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid ORCID iD %q: %s", e.Input, e.Reason)
}

// Normalize converts any accepted input shape into the canonical dashed
// form DDDD-DDDD-DDDD-DDDC. It strips an optional case-insensitive URL
// prefix and all separator characters, requires exactly 16 remaining
// characters of digits with the last optionally being the checksum letter
// X, re-inserts dashes every four characters, and re-validates the result.
// Normalize is idempotent: feeding its output back in returns it unchanged.
func Normalize(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &InvalidIdentifierError{Input: input, Reason: "empty"}
	}

	bare := urlPrefixPattern.ReplaceAllString(trimmed, "")
	bare = strings.ToUpper(separatorStripper.Replace(bare))
	if !barePattern.MatchString(bare) {
		return "", &InvalidIdentifierError{
			Input:  input,
			Reason: "must reduce to 16 characters of digits with an optional trailing X",
		}
	}

	id := bare[0:4] + "-" + bare[4:8] + "-" + bare[8:12] + "-" + bare[12:16]

	// Canonicalization is never trusted blindly; re-check the final form.
	if !canonicalPattern.MatchString(id) {
		return "", &InvalidIdentifierError{Input: input, Reason: "canonical form failed validation"}
	}
	return id, nil
}

// Validate checks an already-dashed iD against the canonical pattern.
// With failFast, mismatches return an InvalidIdentifierError that
// distinguishes empty input and multi-identifier input from a plain format
// mismatch. Without failFast, the outcome is reported as a boolean and the
// error is always nil.
func Validate(id string, failFast bool) (bool, error) {
	trimmed := strings.TrimSpace(id)
	switch {
	case trimmed == "":
		if failFast {
			return false, &InvalidIdentifierError{Input: id, Reason: "empty"}
		}
		return false, nil
	case strings.ContainsAny(trimmed, " \t\n,;"):
		if failFast {
			return false, &InvalidIdentifierError{Input: id, Reason: "contains multiple identifiers; pass one iD at a time"}
		}
		return false, nil
	case !canonicalPattern.MatchString(trimmed):
		if failFast {
			return false, &InvalidIdentifierError{Input: id, Reason: "does not match DDDD-DDDD-DDDD-DDDC"}
		}
		return false, nil
	}
	return true, nil
}
