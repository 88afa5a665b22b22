// Package recovery extracts a valid JSON object from free-form model output.
// It is a pipeline of fallible stages: refusal detection, wrapper stripping,
// object-boundary extraction, strict parse, and a single best-effort repair.
// Each stage is a pure function so its failure mode is testable in isolation.
package recovery

import (
	"encoding/json"
	"regexp"
	"strings"
)

// refusalPrefixes mark responses where the model apologized instead of
// answering. Checked against the trimmed, lowercased text.
var refusalPrefixes = []string{
	"i'm sorry",
	"i cannot",
	"i apologize",
}

var (
	fenceRe         = regexp.MustCompile("(?i)```(?:json|javascript)?\\s*")
	leadInRe        = regexp.MustCompile(`(?i)^(here is|here's|this is|the json is):?\s*`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	// strayQuoteRe escapes a narrow class of unescaped quotes ahead of a
	// key terminator. Best effort: it only has to help often enough to be
	// worth one reparse.
	strayQuoteRe = regexp.MustCompile(`([^\\])"([^",:}\]]*)":`)
)

// Recover runs the recovery stages over raw model output and returns the
// recovered JSON object bytes. It fails with *RefusalError when the model
// declined, and *ParseError when no object can be extracted or parsed.
func Recover(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)

	if prefix, refused := detectRefusal(trimmed); refused {
		return nil, &RefusalError{Preview: prefix}
	}

	sanitized := stripWrappers(trimmed)

	candidate, ok := extractObject(sanitized)
	if !ok {
		return nil, parseError("no JSON object found", sanitized, nil)
	}

	if err := strictParse(candidate); err == nil {
		return []byte(candidate), nil
	} else if repaired, repairErr := repair(candidate); repairErr == nil {
		return repaired, nil
	} else {
		// Report the original strict-parse failure; the repaired text is a
		// derived artifact and its error is usually less informative.
		return nil, parseError("invalid JSON after repair attempt", candidate, err)
	}
}

// detectRefusal reports whether the text starts with a refusal phrase.
func detectRefusal(trimmed string) (string, bool) {
	lower := strings.ToLower(trimmed)
	for _, prefix := range refusalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			preview := trimmed
			if len(preview) > previewLen {
				preview = preview[:previewLen]
			}
			return preview, true
		}
	}
	return "", false
}

// stripWrappers removes fenced code-block markers and common lead-in
// phrases that models prepend despite instructions.
func stripWrappers(text string) string {
	text = fenceRe.ReplaceAllString(text, "")
	text = leadInRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// extractObject slices the text to the span between the first '{' and the
// last '}'. Returns false when no such span exists.
func extractObject(text string) (string, bool) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last <= first {
		return "", false
	}
	return strings.TrimSpace(text[first : last+1]), true
}

// strictParse checks that the candidate is a well-formed JSON object.
func strictParse(candidate string) error {
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(candidate), &obj)
}

// repair applies the known fixes for near-valid model JSON. Trailing commas
// are removed first; the stray-quote escape only runs if that was not
// enough, because its pattern is aggressive and mangles healthy keys.
func repair(candidate string) ([]byte, error) {
	fixed := trailingCommaRe.ReplaceAllString(candidate, "$1")
	if err := strictParse(fixed); err == nil {
		return []byte(fixed), nil
	}

	fixed = strayQuoteRe.ReplaceAllString(fixed, `$1\"$2":`)
	if err := strictParse(fixed); err != nil {
		return nil, err
	}
	return []byte(fixed), nil
}

func parseError(message, content string, cause error) *ParseError {
	head := content
	if len(head) > 1000 {
		head = head[:1000]
	}
	tail := ""
	if len(content) > 500 {
		tail = content[len(content)-500:]
	}
	return &ParseError{
		Message: message,
		Length:  len(content),
		Head:    head,
		Tail:    tail,
		Cause:   cause,
	}
}
