package llm

import "time"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Defaults for generation requests.
const (
	DefaultMaxOutputTokens = 16384
	DefaultRetries         = 2
	DefaultTimeout         = 120 * time.Second
)

// Options configures a single Generate call. The zero value is usable;
// unset fields fall back to the defaults above. Sampling temperature is
// deliberately absent: the service default is used for every call.
type Options struct {
	Model           string
	MaxOutputTokens int32
	Retries         int
	Timeout         time.Duration
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.MaxOutputTokens <= 0 {
		o.MaxOutputTokens = DefaultMaxOutputTokens
	}
	if o.Retries <= 0 {
		o.Retries = DefaultRetries
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
