// Package types provides type definitions for structured data used throughout the match engine.
package types

import "time"

// SkillCategory is the coarse grouping a skill belongs to.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryDatabase SkillCategory = "database"
	CategoryDevOps   SkillCategory = "devops"
	CategoryAIML     SkillCategory = "ai_ml"
	CategoryOther    SkillCategory = "other"
)

// ExtractedSkill is a skill found in a resume. Confidence is 1.0 for exact
// dictionary matches and lower for fuzzy matches.
type ExtractedSkill struct {
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Confidence float64       `json:"confidence"`
}

// Contact holds contact details extracted from a resume. Fields that could
// not be found are empty strings, never absent.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// WorkExperience is a single position parsed from the experience section.
// EndDate is nil while IsCurrent is true.
type WorkExperience struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	Description []string   `json:"description"`
}

// Education is a single entry parsed from the education section.
// A zero StartYear or EndYear means the year was not found.
type Education struct {
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	Institution  string `json:"institution"`
	StartYear    int    `json:"start_year,omitempty"`
	EndYear      int    `json:"end_year,omitempty"`
	IsCurrent    bool   `json:"is_current"`
}

// ParsedResume is the aggregate produced by a full resume parse. It is
// immutable once created; a new upload replaces it wholesale.
type ParsedResume struct {
	ID         string           `json:"id"`
	Contact    Contact          `json:"contact"`
	Skills     []ExtractedSkill `json:"skills"`
	Experience []WorkExperience `json:"experience"`
	Education  []Education      `json:"education"`
	RawText    string           `json:"raw_text"`
	Embedding  []float32        `json:"embedding,omitempty"`
	Confidence float64          `json:"confidence"`
	ParsedAt   time.Time        `json:"parsed_at"`
}
