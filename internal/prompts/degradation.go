package prompts

import "strings"

// Replacement is a single literal old -> new substitution.
type Replacement struct {
	Old string
	New string
}

// Degradation is the reduced-scope policy applied to the instruction block
// when the generation service truncates its output. It is a list of literal
// text substitutions so callers can tune how aggressively scope shrinks.
type Degradation struct {
	Replacements []Replacement
}

// DefaultDegradation asks for fewer skills and fewer bullets per job, which
// is usually enough to bring the response under the output ceiling.
func DefaultDegradation() Degradation {
	return Degradation{
		Replacements: []Replacement{
			{Old: "(60-80 total, 5-8 categories)", New: "(50-60 total, 5-8 categories)"},
			{Old: "8-12 skills per category", New: "6-10 skills per category"},
			{Old: "6-8 bullets each", New: "4-5 bullets each"},
			{Old: "6-8 bullets per job (most recent jobs get 8, older jobs 5-6)", New: "4-5 bullets per job"},
		},
	}
}

// Apply returns a copy of the blocks with the degradation substitutions
// applied to the instruction block. The content block is left untouched.
func (d Degradation) Apply(blocks Blocks) Blocks {
	instruction := blocks.Instruction
	for _, r := range d.Replacements {
		instruction = strings.ReplaceAll(instruction, r.Old, r.New)
	}
	return Blocks{Instruction: instruction, Content: blocks.Content}
}
