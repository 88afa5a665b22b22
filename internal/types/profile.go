// Package types contains the shared data structures passed between pipeline stages.
package types

// Profile is the authoritative candidate record loaded from the profile store.
// It is read-only to the pipeline: generated content never overwrites its fields.
type Profile struct {
	Name       string             `json:"name" validate:"required"`
	Email      string             `json:"email" validate:"omitempty,email"`
	Phone      string             `json:"phone"`
	Location   string             `json:"location"`
	LinkedIn   string             `json:"linkedin"`
	Website    string             `json:"website"`
	Experience []ExperienceRecord `json:"experience" validate:"dive"`
	Education  []EducationRecord  `json:"education"`
}

// ExperienceRecord is one employment entry. Order is meaningful: index i
// corresponds positionally to index i of the generated experience content.
type ExperienceRecord struct {
	Company   string `json:"company" validate:"required"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"`
}

// EducationRecord is one education entry, passed through to the final resume unmodified.
type EducationRecord struct {
	Degree    string `json:"degree"`
	School    string `json:"school"`
	StartYear string `json:"start_year"`
	EndYear   string `json:"end_year"`
}
