// Package prompts composes the two text blocks sent to the generation
// service. The instruction block is deterministic for a given profile and
// experience figure so the service can treat it as a cacheable prefix; the
// content block carries the job posting and restates the output contract.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/resume-forge/internal/types"
)

//go:embed instruction.tmpl
var templateFiles embed.FS

var instructionTmpl = template.Must(template.ParseFS(templateFiles, "instruction.tmpl"))

// Blocks holds the two independent prompt blocks. Instruction is the static,
// cacheable part; Content is the per-request job posting.
type Blocks struct {
	Instruction string
	Content     string
}

// instructionData is the template input for the instruction block.
type instructionData struct {
	Name       string
	Email      string
	Phone      string
	Location   string
	Years      int
	EntryCount int
	History    []string
	Education  []string
}

// Build renders the prompt blocks for a profile, its computed years of
// experience, and a job posting. It never mutates the profile and performs
// no validation of the posting text; eligibility has already run.
func Build(profile *types.Profile, years int, posting string) (Blocks, error) {
	data := instructionData{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Location:   profile.Location,
		Years:      years,
		EntryCount: len(profile.Experience),
		History:    historyLines(profile.Experience),
		Education:  educationLines(profile.Education),
	}

	var sb strings.Builder
	if err := instructionTmpl.Execute(&sb, data); err != nil {
		return Blocks{}, fmt.Errorf("failed to render instruction block: %w", err)
	}

	return Blocks{
		Instruction: sb.String(),
		Content:     contentBlock(posting),
	}, nil
}

// historyLines formats the work history as numbered pipe-delimited lines,
// skipping empty optional fields.
func historyLines(records []types.ExperienceRecord) []string {
	lines := make([]string, 0, len(records))
	for i, rec := range records {
		parts := []string{fmt.Sprintf("%d. %s", i+1, rec.Company)}
		if rec.Title != "" {
			parts = append(parts, rec.Title)
		}
		if rec.Location != "" {
			parts = append(parts, rec.Location)
		}
		parts = append(parts, fmt.Sprintf("%s - %s", rec.StartDate, rec.EndDate))
		lines = append(lines, strings.Join(parts, " | "))
	}
	return lines
}

func educationLines(records []types.EducationRecord) []string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("%s, %s (%s-%s)", rec.Degree, rec.School, rec.StartYear, rec.EndYear))
	}
	return lines
}

func contentBlock(posting string) string {
	var sb strings.Builder
	sb.WriteString("Generate an ATS-optimized resume for the following job description:\n\n")
	sb.WriteString(posting)
	sb.WriteString("\n\nRemember: Extract company name and job title, then create the tailored resume following all instructions above. Return ONLY a JSON object with the required top-level keys: company, jobTitle, title, summary, skills, experience.")
	return sb.String()
}
