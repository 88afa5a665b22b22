package types

// Default values applied when the generation service omits the extracted
// company or job title.
const (
	DefaultCompany  = "Unknown Company"
	DefaultJobTitle = "Software Engineer"
)

// GeneratedContent is the structured object recovered from the generation
// service's response. Experience entries are indexed positionally against
// Profile.Experience.
type GeneratedContent struct {
	Company    string                `json:"company"`
	JobTitle   string                `json:"jobTitle"`
	Title      string                `json:"title"`
	Summary    string                `json:"summary"`
	Skills     map[string][]string   `json:"skills"`
	Experience []GeneratedExperience `json:"experience"`
}

// GeneratedExperience is the generated narrative for a single employment entry.
type GeneratedExperience struct {
	Title   string   `json:"title"`
	Details []string `json:"details"`
}

// TokenUsage carries the generation service's token accounting. Diagnostic
// only; surfaced to callers as response headers.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
	CachedTokens     int `json:"cachedTokens"`
}
