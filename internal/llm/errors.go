package llm

import "fmt"

// UpstreamError reports that the generation service failed after all
// attempts were exhausted. It wraps the last attempt's error.
type UpstreamError struct {
	Attempts int
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a single attempt that lost the race against its timer.
type TimeoutError struct {
	Elapsed string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generation request timed out after %s", e.Elapsed)
}
