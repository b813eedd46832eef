// Package scoring computes explainable compatibility scores between a
// parsed resume and a job posting. Scoring is deterministic for identical
// inputs and never fails: absent or malformed job requirements score as
// trivially satisfied rather than erroring.
package scoring

import (
	"math"
	"time"

	"github.com/ravi/jobmatch/internal/types"
)

// Fixed weights for combining sub-scores into the overall score.
const (
	skillWeight      = 0.6
	experienceWeight = 0.3
	educationWeight  = 0.1
)

// Compute scores resume against job. now anchors the open-ended experience
// entries and is stamped as the result's computation time, keeping the
// function a pure one of its inputs.
func Compute(resume *types.ParsedResume, job *types.JobPosting, now time.Time) *types.MatchResult {
	skill := matchSkills(resume.Skills, job.RequiredSkills)
	experience := matchExperience(resume.Experience, job.ExperienceRequirement, now)
	education := matchEducation(resume.Education, job.EducationRequirement)

	overall := int(math.Round(
		skillWeight*float64(skill.Score) +
			experienceWeight*float64(experience.Score) +
			educationWeight*float64(education.Score)))

	return &types.MatchResult{
		JobID:           job.ID,
		OverallScore:    clampScore(overall),
		SkillMatch:      skill,
		ExperienceMatch: experience,
		EducationMatch:  education,
		Explanation:     buildExplanation(skill, experience, education),
		ComputedAt:      now,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
