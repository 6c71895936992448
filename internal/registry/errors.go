// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure into the closed error taxonomy.
type Kind int

const (
	// KindConnection means the host could not be reached at all. The call
	// is fatal; the bounded retry inside the transport has already run.
	KindConnection Kind = iota + 1

	// KindNotFound means HTTP 404: no such identifier or section.
	KindNotFound

	// KindAuthentication means HTTP 401. The public registry rejects any
	// token that is malformed or issued for the wrong audience, including
	// tokens supplied for what should be anonymous access.
	KindAuthentication

	// KindRateLimited means HTTP 429.
	KindRateLimited

	// KindAPI covers every other HTTP status >= 400.
	KindAPI

	// KindMalformed means the response body was not valid JSON.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection error"
	case KindNotFound:
		return "not found"
	case KindAuthentication:
		return "authentication failed"
	case KindRateLimited:
		return "rate limited"
	case KindAPI:
		return "API error"
	case KindMalformed:
		return "malformed response"
	default:
		return "unknown"
	}
}

// Error is the transport-boundary error. It always carries the identifier
// and endpoint of the failed call so failures are diagnosable without a
// debugger; HTTP failures additionally carry the numeric status and the
// server-provided description.
type Error struct {
	Kind        Kind
	Identifier  string
	Endpoint    string
	Status      int
	Description string
	Err         error
}

func (e *Error) Error() string {
	target := e.Endpoint
	if e.Identifier != "" {
		target = e.Identifier + "/" + e.Endpoint
	}
	switch e.Kind {
	case KindConnection:
		return fmt.Sprintf("connection error fetching %s: %v", target, e.Err)
	case KindMalformed:
		return fmt.Sprintf("malformed response from %s: %v", target, e.Err)
	default:
		msg := fmt.Sprintf("%s: %s (HTTP %d)", e.Kind, target, e.Status)
		if e.Description != "" {
			msg += ": " + e.Description
		}
		return msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the taxonomy Kind of err when it is (or wraps) a registry
// Error, and 0 otherwise.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}
