// Package eligibility decides whether a job posting is worth processing.
// It is a deterministic keyword-rule gate: an ordered list of predicate
// rules evaluated short-circuit over the lowercased posting text.
package eligibility

import (
	"fmt"
	"strings"
)

// Reason is the rejection reason code surfaced to API clients as locationType.
type Reason string

// Rejection reason codes.
const (
	ReasonHybrid     Reason = "hybrid"
	ReasonOnsite     Reason = "onsite"
	ReasonEntryLevel Reason = "entry-level"
	ReasonClearance  Reason = "clearance-required"
)

// Verdict is the classifier's decision. When Accepted is false, exactly one
// Reason is set and Message holds the human-readable explanation.
type Verdict struct {
	Accepted bool
	Reason   Reason
	Message  string
}

// RejectionError reports a posting rejected by the classifier. Rejection is
// terminal: no generation call is made for a rejected posting.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("posting rejected (%s): %s", e.Reason, e.Message)
}

// rule is a single rejection predicate. Rules run in order and the first
// match wins; later rules are never evaluated after a rejection.
type rule struct {
	reason  Reason
	message string
	matches func(text string) bool
}

var rules = []rule{
	{
		reason:  ReasonHybrid,
		message: "This position is HYBRID (requires some office days). This tool is designed for REMOTE-ONLY positions. Please provide a fully remote job description.",
		matches: func(text string) bool {
			return containsAny(text, hybridKeywords)
		},
	},
	{
		reason:  ReasonOnsite,
		message: "This position is ONSITE/IN-PERSON. This tool is designed for REMOTE-ONLY positions. Please provide a fully remote job description.",
		matches: func(text string) bool {
			return containsAny(text, onsiteKeywords) && !containsAny(text, remoteKeywords)
		},
	},
	{
		reason:  ReasonEntryLevel,
		message: "This position is ENTRY LEVEL. This tool is designed for MID-LEVEL and SENIOR positions. Please provide a more senior job description.",
		matches: func(text string) bool {
			// When both junior and intern phrases appear, neither flag is
			// set and the posting passes this rule. Intentional: mixed
			// postings ("not an internship, junior welcome") are ambiguous
			// and get the benefit of the doubt.
			hasJunior := containsAny(text, juniorKeywords)
			hasIntern := containsAny(text, internKeywords)
			return (hasJunior && !hasIntern) || (hasIntern && !hasJunior)
		},
	},
	{
		reason:  ReasonClearance,
		message: "This position requires SECURITY CLEARANCE (including Public Trust or higher). This tool is designed for positions that do NOT require any level of security clearance.",
		matches: func(text string) bool {
			return containsAny(text, clearanceKeywords)
		},
	},
}

// Classify evaluates the rejection rules against the posting text and
// returns the verdict. It is a pure function of its input.
func Classify(posting string) Verdict {
	text := strings.ToLower(posting)
	for _, r := range rules {
		if r.matches(text) {
			return Verdict{Accepted: false, Reason: r.reason, Message: r.message}
		}
	}
	return Verdict{Accepted: true}
}

// Check is the error-returning form of Classify for pipeline use.
func Check(posting string) error {
	v := Classify(posting)
	if v.Accepted {
		return nil
	}
	return &RejectionError{Reason: v.Reason, Message: v.Message}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
