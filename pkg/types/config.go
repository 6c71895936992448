package types

import "time"

// HTTPConfig holds shared HTTP settings for registry calls.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with registry requests
	// (e.g. "orcid-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RegistryConfig holds settings for talking to the identity registry.
type RegistryConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the production registry endpoint, e.g. to point
	// at the sandbox registry or a test double.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Token is an optional bearer token. The transport only attaches it
	// when the caller passes it explicitly; this field exists so the CLI
	// layer can resolve it from flags, config, or environment.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// FetchConfig holds settings for batch retrieval.
type FetchConfig struct {
	// Delay is the pause between consecutive registry calls in a batch.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// FailFast aborts a batch on the first failed identifier instead of
	// recording the failure and continuing.
	FailFast bool `json:"fail_fast" yaml:"fail_fast"`

	// Format selects the output rendering: table, csv, json, or yaml.
	Format string `json:"format" yaml:"format"`
}

// SearchConfig holds settings for registry search.
type SearchConfig struct {
	// MaxRows overrides the default number of results per request when
	// the caller does not ask for a specific count.
	MaxRows int `json:"max_rows" yaml:"max_rows"`
}
