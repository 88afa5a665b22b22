package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-forge/internal/types"
)

func profile() *types.Profile {
	return &types.Profile{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Denver, CO",
		LinkedIn: "linkedin.com/in/janedoe",
		Experience: []types.ExperienceRecord{
			{Company: "Acme", Title: "Staff Engineer", Location: "Remote", StartDate: "2021-02-01", EndDate: "present"},
			{Company: "Initech", Title: "", Location: "Austin, TX", StartDate: "2017-06-01", EndDate: "2021-01-31"},
			{Company: "Hooli", Title: "", StartDate: "2014-01-01", EndDate: "2017-05-31"},
		},
		Education: []types.EducationRecord{
			{Degree: "BSc", School: "CU Boulder", StartYear: "2010", EndYear: "2014"},
		},
	}
}

func content() *types.GeneratedContent {
	return &types.GeneratedContent{
		Company:  "Globex",
		JobTitle: "Senior Backend Engineer",
		Title:    "Senior Backend Engineer",
		Summary:  "Engineer with a decade of experience.",
		Skills:   map[string][]string{"Backend": {"Go"}},
		Experience: []types.GeneratedExperience{
			{Title: "Principal Engineer", Details: []string{"Generated bullet one"}},
			{Title: "Backend Engineer", Details: []string{"Generated bullet two"}},
		},
	}
}

func TestResume_AuthoritativeFieldsFromProfile(t *testing.T) {
	merged := Resume(profile(), content(), 12)

	require.Len(t, merged.Experience, 3)
	for i, rec := range profile().Experience {
		assert.Equal(t, rec.Company, merged.Experience[i].Company, "entry %d company", i)
		assert.Equal(t, rec.Location, merged.Experience[i].Location, "entry %d location", i)
		assert.Equal(t, rec.StartDate, merged.Experience[i].StartDate, "entry %d start", i)
		assert.Equal(t, rec.EndDate, merged.Experience[i].EndDate, "entry %d end", i)
	}
}

func TestResume_TitleFallbackOrder(t *testing.T) {
	merged := Resume(profile(), content(), 12)

	// Profile title wins when present.
	assert.Equal(t, "Staff Engineer", merged.Experience[0].Title)
	// Generated title fills an empty profile title.
	assert.Equal(t, "Backend Engineer", merged.Experience[1].Title)
	// Neither present: literal default.
	assert.Equal(t, "Engineer", merged.Experience[2].Title)
}

func TestResume_ShorterGeneratedSequence(t *testing.T) {
	merged := Resume(profile(), content(), 12)

	require.Len(t, merged.Experience, 3)
	assert.Equal(t, []string{"Generated bullet one"}, merged.Experience[0].Details)
	assert.Equal(t, []string{"Generated bullet two"}, merged.Experience[1].Details)
	// Third profile entry has no generated counterpart: empty details, not an error.
	assert.NotNil(t, merged.Experience[2].Details)
	assert.Empty(t, merged.Experience[2].Details)
}

func TestResume_MetadataAndDefaults(t *testing.T) {
	merged := Resume(profile(), content(), 12)
	assert.Equal(t, "Globex", merged.Company)
	assert.Equal(t, "Senior Backend Engineer", merged.JobTitle)

	// Posting metadata never leaks into per-entry records.
	for i, entry := range merged.Experience {
		assert.NotEqual(t, "Globex", entry.Company, "entry %d", i)
	}

	empty := content()
	empty.Company = ""
	empty.JobTitle = ""
	merged = Resume(profile(), empty, 12)
	assert.Equal(t, types.DefaultCompany, merged.Company)
	assert.Equal(t, types.DefaultJobTitle, merged.JobTitle)
}

func TestResume_PassThroughFields(t *testing.T) {
	p := profile()
	c := content()
	merged := Resume(p, c, 12)

	assert.Equal(t, p.Name, merged.Name)
	assert.Equal(t, p.Email, merged.Email)
	assert.Equal(t, c.Summary, merged.Summary)
	assert.Equal(t, c.Skills, merged.Skills)
	assert.Equal(t, c.Title, merged.Title)
	assert.Equal(t, 12, merged.YearsOfExperience)
	assert.Equal(t, p.Education, merged.Education)
}

func TestResume_DoesNotMutateInputs(t *testing.T) {
	p := profile()
	c := content()
	Resume(p, c, 12)

	assert.Equal(t, profile(), p)
	assert.Equal(t, content(), c)
}
