package types

// JobPosting is the projection of a job posting the match engine consumes.
// The requirement fields are free text as written by the recruiter; absent
// requirements are empty strings and score as trivially satisfied.
type JobPosting struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title,omitempty"`
	RequiredSkills        []string `json:"required_skills"`
	ExperienceRequirement string   `json:"experience_requirement,omitempty"`
	EducationRequirement  string   `json:"education_requirement,omitempty"`
}
