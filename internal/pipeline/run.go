// Package pipeline orchestrates the generation flow: classify the posting,
// compute experience, build the prompt, call the generation service, recover
// and validate the JSON, and merge with the authoritative profile. The whole
// run is a pure function of its inputs plus the one external call; nothing
// is cached across requests.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/resume-forge/internal/eligibility"
	"github.com/jonathan/resume-forge/internal/experience"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/merge"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/recovery"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
)

// Options configures a single pipeline run.
type Options struct {
	Client      llm.Client
	Profile     *types.Profile
	Posting     string
	Generation  llm.Options
	Degradation *prompts.Degradation
}

// Result is a completed run: the render-ready resume plus the token usage
// surfaced to the caller as diagnostic headers.
type Result struct {
	Resume *types.MergedResume
	Usage  types.TokenUsage
}

// Run executes the pipeline. A rejected posting returns
// *eligibility.RejectionError before any generation call is made.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Client == nil {
		return nil, fmt.Errorf("pipeline requires a generation client")
	}
	if opts.Profile == nil {
		return nil, fmt.Errorf("pipeline requires a profile")
	}

	if err := eligibility.Check(opts.Posting); err != nil {
		return nil, err
	}

	years := experience.Years(opts.Profile.Experience)

	blocks, err := prompts.Build(opts.Profile, years, opts.Posting)
	if err != nil {
		return nil, err
	}

	gen, err := opts.Client.Generate(ctx, blocks, opts.Generation)
	if err != nil {
		return nil, err
	}
	usage := gen.Usage

	if gen.Truncated {
		// One reduced-scope re-issue before giving up. The first call's
		// usage stays on the result; the retry is a recovery detail.
		log.Printf("[PIPELINE] output truncated at the token ceiling, retrying with reduced scope")
		degradation := prompts.DefaultDegradation()
		if opts.Degradation != nil {
			degradation = *opts.Degradation
		}
		gen, err = opts.Client.Generate(ctx, degradation.Apply(blocks), opts.Generation)
		if err != nil {
			return nil, err
		}
	}

	recovered, err := recovery.Recover(gen.Text)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateContent(recovered); err != nil {
		return nil, err
	}

	var content types.GeneratedContent
	if err := json.Unmarshal(recovered, &content); err != nil {
		return nil, fmt.Errorf("failed to decode generated content: %w", err)
	}

	return &Result{
		Resume: merge.Resume(opts.Profile, &content, years),
		Usage:  usage,
	}, nil
}
