package types

// MergedResume is the render-ready structure handed to the template renderer.
// Identity, contact, employment facts, and education come from the profile;
// narrative fields come from the generated content.
type MergedResume struct {
	Name              string              `json:"name"`
	Title             string              `json:"title"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	Location          string              `json:"location"`
	LinkedIn          string              `json:"linkedin"`
	Website           string              `json:"website"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Summary           string              `json:"summary"`
	Skills            map[string][]string `json:"skills"`
	Experience        []MergedExperience  `json:"experience"`
	Education         []EducationRecord   `json:"education"`

	// Metadata extracted from the job posting; used for the artifact
	// filename, never injected into per-entry records.
	Company  string `json:"company"`
	JobTitle string `json:"job_title"`
}

// MergedExperience is a single employment entry after the positional merge.
// Company, Location, and the date range are always the profile's values.
type MergedExperience struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Details   []string `json:"details"`
}
