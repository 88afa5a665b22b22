// Package llm wraps the external text-generation service behind a small
// client interface with bounded retries and per-attempt timeouts.
package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/types"
)

// Result is the raw outcome of a generation call.
type Result struct {
	// Text is the raw model output, untouched; recovery parses it later.
	Text string
	// Usage carries the service's token accounting for this call.
	Usage types.TokenUsage
	// Truncated is set when the service stopped at the output-length
	// ceiling. The caller re-issues once with a reduced-scope instruction
	// block before giving up.
	Truncated bool
}

// Client is an abstraction over generation providers.
type Client interface {
	// Generate submits the prompt blocks and returns the raw response.
	Generate(ctx context.Context, blocks prompts.Blocks, opts Options) (*Result, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// Generate runs up to opts.Retries sequential attempts, each raced against
// opts.Timeout. Retries are never concurrent so a slow attempt cannot turn
// into duplicate billed calls. The last error is surfaced as UpstreamError.
func (c *GeminiClient) Generate(ctx context.Context, blocks prompts.Blocks, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	return generateWithRetry(ctx, opts, func(attemptCtx context.Context) (*Result, error) {
		return c.call(attemptCtx, blocks, opts)
	})
}

// call performs one request against the Gemini API. The instruction block
// rides as the system instruction, which is the stable prefix the service
// can cache across calls for the same profile.
func (c *GeminiClient) call(ctx context.Context, blocks prompts.Blocks, opts Options) (*Result, error) {
	model := c.client.GenerativeModel(opts.Model)
	model.SetMaxOutputTokens(opts.MaxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(blocks.Instruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(blocks.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, truncated, err := extractCandidate(resp)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:      text,
		Usage:     usageFromResponse(resp),
		Truncated: truncated,
	}, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// attemptFunc is a single generation attempt bound to an attempt context.
type attemptFunc func(ctx context.Context) (*Result, error)

// generateWithRetry runs fn up to opts.Retries times. Each attempt races the
// call against a timer; the loser's eventual completion is discarded via the
// buffered channel, never awaited.
func generateWithRetry(ctx context.Context, opts Options, fn attemptFunc) (*Result, error) {
	opts = opts.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= opts.Retries; attempt++ {
		res, err := runAttempt(ctx, opts.Timeout, fn)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt < opts.Retries {
			log.Printf("[LLM] attempt %d/%d failed, retrying: %v", attempt, opts.Retries, err)
		}
	}
	return nil, &UpstreamError{Attempts: opts.Retries, Err: lastErr}
}

func runAttempt(ctx context.Context, timeout time.Duration, fn attemptFunc) (*Result, error) {
	type outcome struct {
		res *Result
		err error
	}

	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		res, err := fn(attemptCtx)
		ch <- outcome{res: res, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.res, out.err
	case <-timer.C:
		return nil, &TimeoutError{Elapsed: timeout.String()}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// extractCandidate pulls the text parts out of the first candidate and
// reports whether the response hit the output-length ceiling.
func extractCandidate(resp *genai.GenerateContentResponse) (string, bool, error) {
	if len(resp.Candidates) == 0 {
		return "", false, fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	truncated := candidate.FinishReason == genai.FinishReasonMaxTokens

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", truncated, fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", truncated, fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), truncated, nil
}

func usageFromResponse(resp *genai.GenerateContentResponse) types.TokenUsage {
	if resp.UsageMetadata == nil {
		return types.TokenUsage{}
	}
	return types.TokenUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		CachedTokens:     int(resp.UsageMetadata.CachedContentTokenCount),
	}
}
