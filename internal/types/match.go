package types

import "time"

// SkillMatch is the skill sub-score of a match computation.
type SkillMatch struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ExperienceMatch is the experience sub-score of a match computation.
type ExperienceMatch struct {
	Score         int    `json:"score"`
	Years         int    `json:"years"`
	RequiredYears int    `json:"required_years"`
	Level         string `json:"level"`
}

// EducationMatch is the education sub-score of a match computation.
type EducationMatch struct {
	Score     int    `json:"score"`
	HasDegree bool   `json:"has_degree"`
	Degree    string `json:"degree"`
}

// MatchResult is the scored compatibility between one candidate resume and
// one job posting. At most one live result exists per (CandidateID, JobID).
type MatchResult struct {
	CandidateID     string          `json:"candidate_id"`
	JobID           string          `json:"job_id"`
	OverallScore    int             `json:"overall_score"`
	SkillMatch      SkillMatch      `json:"skill_match"`
	ExperienceMatch ExperienceMatch `json:"experience_match"`
	EducationMatch  EducationMatch  `json:"education_match"`
	Explanation     []string        `json:"explanation"`
	ComputedAt      time.Time       `json:"computed_at"`
}
