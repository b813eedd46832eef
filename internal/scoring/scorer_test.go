package scoring

import (
	"testing"
	"time"

	"github.com/ravi/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreClock = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func yearPtr(year int) *time.Time {
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func skillList(names ...string) []types.ExtractedSkill {
	skills := make([]types.ExtractedSkill, 0, len(names))
	for _, n := range names {
		skills = append(skills, types.ExtractedSkill{Name: n, Category: types.CategoryOther, Confidence: 1.0})
	}
	return skills
}

func TestCompute_EndToEndScenario(t *testing.T) {
	resume := &types.ParsedResume{
		Skills: skillList("python", "aws", "docker"),
		Experience: []types.WorkExperience{
			{Title: "Engineer", Company: "Acme", StartDate: yearPtr(2018), EndDate: yearPtr(2023)},
		},
	}
	job := &types.JobPosting{
		ID:                    "job-1",
		RequiredSkills:        []string{"python", "aws", "docker", "kubernetes"},
		ExperienceRequirement: "3+ years of backend experience",
	}

	result := Compute(resume, job, scoreClock)

	assert.Equal(t, 75, result.SkillMatch.Score)
	assert.Equal(t, []string{"kubernetes"}, result.SkillMatch.MissingSkills)
	assert.Equal(t, 100, result.ExperienceMatch.Score)
	assert.Equal(t, 100, result.EducationMatch.Score)
	// round(0.6*75 + 0.3*100 + 0.1*100) = 85
	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, scoreClock, result.ComputedAt)
}

func TestCompute_Deterministic(t *testing.T) {
	resume := &types.ParsedResume{
		Skills: skillList("go"),
		Experience: []types.WorkExperience{
			{StartDate: yearPtr(2019), IsCurrent: true},
		},
	}
	job := &types.JobPosting{RequiredSkills: []string{"go", "rust"}, ExperienceRequirement: "5 years"}

	first := Compute(resume, job, scoreClock)
	second := Compute(resume, job, scoreClock)

	assert.Equal(t, first, second)
}

func TestCompute_OverallScoreBounded(t *testing.T) {
	cases := []struct {
		name   string
		resume *types.ParsedResume
		job    *types.JobPosting
	}{
		{"empty resume, empty job", &types.ParsedResume{}, &types.JobPosting{}},
		{"empty resume, demanding job", &types.ParsedResume{}, &types.JobPosting{
			RequiredSkills:        []string{"go", "rust", "zig"},
			ExperienceRequirement: "10+ years",
			EducationRequirement:  "PhD required",
		}},
		{"strong resume, no requirements", &types.ParsedResume{
			Skills: skillList("go", "rust", "docker"),
			Experience: []types.WorkExperience{
				{StartDate: yearPtr(2000), EndDate: yearPtr(2026)},
			},
			Education: []types.Education{{Degree: "PhD"}},
		}, &types.JobPosting{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Compute(tc.resume, tc.job, scoreClock)
			assert.GreaterOrEqual(t, result.OverallScore, 0)
			assert.LessOrEqual(t, result.OverallScore, 100)
		})
	}
}

func TestCompute_ExplanationOrder(t *testing.T) {
	resume := &types.ParsedResume{
		Skills: skillList("python"),
		Experience: []types.WorkExperience{
			{StartDate: yearPtr(2020), EndDate: yearPtr(2022)},
		},
		Education: []types.Education{{Degree: "Bachelor of Science"}},
	}
	job := &types.JobPosting{
		RequiredSkills:        []string{"python", "kubernetes", "terraform", "helm", "argo"},
		ExperienceRequirement: "5+ years",
		EducationRequirement:  "bachelor's degree",
	}

	result := Compute(resume, job, scoreClock)

	require.Len(t, result.Explanation, 4)
	assert.Contains(t, result.Explanation[0], "skill")
	assert.Contains(t, result.Explanation[1], "Experience is below requirement (2 years vs 5 required)")
	assert.Contains(t, result.Explanation[2], "Education requirement met with bachelors degree")
	assert.Contains(t, result.Explanation[3], "Missing skills: kubernetes, terraform, helm and 1 more.")
}
