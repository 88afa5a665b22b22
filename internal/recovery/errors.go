package recovery

import "fmt"

// previewLen bounds the refusal text included in error messages.
const previewLen = 200

// RefusalError reports that the model apologized or declined instead of
// returning JSON. Extraction is never attempted on a refusal.
type RefusalError struct {
	Preview string
}

func (e *RefusalError) Error() string {
	return fmt.Sprintf("model refused to generate content: %q", e.Preview)
}

// ParseError reports that no valid JSON object could be recovered. It
// carries diagnostic context about the offending text so failures are
// observable without logging the full response.
type ParseError struct {
	Message string
	Length  int
	Head    string
	Tail    string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to recover JSON (%d bytes): %s: %v", e.Length, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to recover JSON (%d bytes): %s", e.Length, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
