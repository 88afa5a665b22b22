// Package merge combines validated generated content with the authoritative
// profile record. The merge is positional: index i of the profile's work
// history pairs with index i of the generated experience. Employment facts
// (company, location, dates) always come from the profile so generated text
// can never overwrite them.
package merge

import "github.com/jonathan/resume-forge/internal/types"

// fallbackTitle is used when neither the profile nor the generated content
// provides a title for an experience entry.
const fallbackTitle = "Engineer"

// Resume builds the render-ready structure from the profile, the generated
// content, and the computed years of experience. Neither input is mutated.
func Resume(profile *types.Profile, content *types.GeneratedContent, years int) *types.MergedResume {
	merged := &types.MergedResume{
		Name:              profile.Name,
		Title:             content.Title,
		Email:             profile.Email,
		Phone:             profile.Phone,
		Location:          profile.Location,
		LinkedIn:          profile.LinkedIn,
		Website:           profile.Website,
		YearsOfExperience: years,
		Summary:           content.Summary,
		Skills:            content.Skills,
		Experience:        mergeExperience(profile.Experience, content.Experience),
		Education:         append([]types.EducationRecord(nil), profile.Education...),
		Company:           content.Company,
		JobTitle:          content.JobTitle,
	}

	if merged.Company == "" {
		merged.Company = types.DefaultCompany
	}
	if merged.JobTitle == "" {
		merged.JobTitle = types.DefaultJobTitle
	}
	return merged
}

// mergeExperience aligns the two sequences by index. The profile drives the
// entry count: generated entries beyond it are dropped, and profile entries
// without a generated counterpart get empty details rather than an error.
func mergeExperience(profile []types.ExperienceRecord, generated []types.GeneratedExperience) []types.MergedExperience {
	merged := make([]types.MergedExperience, 0, len(profile))
	for i, rec := range profile {
		entry := types.MergedExperience{
			Title:     rec.Title,
			Company:   rec.Company,
			Location:  rec.Location,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
			Details:   []string{},
		}
		if i < len(generated) {
			if entry.Title == "" {
				entry.Title = generated[i].Title
			}
			if generated[i].Details != nil {
				entry.Details = generated[i].Details
			}
		}
		if entry.Title == "" {
			entry.Title = fallbackTitle
		}
		merged = append(merged, entry)
	}
	return merged
}
