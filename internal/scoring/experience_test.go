package scoring

import (
	"testing"

	"github.com/ravi/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchExperience_RoundTrip(t *testing.T) {
	experience := []types.WorkExperience{
		{Title: "Engineer", Company: "Acme", StartDate: yearPtr(2018), EndDate: yearPtr(2022)},
	}

	match := matchExperience(experience, "3+ years", scoreClock)

	assert.Equal(t, 4, match.Years)
	assert.Equal(t, 3, match.RequiredYears)
	assert.Equal(t, 100, match.Score)
	assert.Equal(t, "mid", match.Level)
}

func TestMatchExperience_OpenEndedCountsToNow(t *testing.T) {
	experience := []types.WorkExperience{
		{StartDate: yearPtr(2020), IsCurrent: true},
	}

	match := matchExperience(experience, "", scoreClock)

	assert.Equal(t, 6, match.Years)
	assert.Equal(t, "senior", match.Level)
}

func TestMatchExperience_MissingStartContributesNothing(t *testing.T) {
	experience := []types.WorkExperience{
		{EndDate: yearPtr(2022)},
		{StartDate: yearPtr(2019), EndDate: yearPtr(2021)},
	}

	match := matchExperience(experience, "", scoreClock)

	assert.Equal(t, 2, match.Years)
}

func TestMatchExperience_NegativeSpanIgnored(t *testing.T) {
	experience := []types.WorkExperience{
		{StartDate: yearPtr(2022), EndDate: yearPtr(2019)},
	}

	match := matchExperience(experience, "", scoreClock)

	assert.Equal(t, 0, match.Years)
}

func TestMatchExperience_PartialCredit(t *testing.T) {
	experience := []types.WorkExperience{
		{StartDate: yearPtr(2021), EndDate: yearPtr(2023)},
	}

	match := matchExperience(experience, "8 years minimum", scoreClock)

	assert.Equal(t, 2, match.Years)
	assert.Equal(t, 8, match.RequiredYears)
	assert.Equal(t, 25, match.Score)
}

func TestMatchExperience_NoRequirementFullScore(t *testing.T) {
	match := matchExperience(nil, "great attitude wanted", scoreClock)

	assert.Equal(t, 100, match.Score)
	assert.Equal(t, 0, match.RequiredYears)
	assert.Equal(t, "entry", match.Level)
}

func TestExperienceLevel_Ladder(t *testing.T) {
	assert.Equal(t, "entry", experienceLevel(0))
	assert.Equal(t, "entry", experienceLevel(1))
	assert.Equal(t, "mid", experienceLevel(2))
	assert.Equal(t, "mid", experienceLevel(4))
	assert.Equal(t, "senior", experienceLevel(5))
	assert.Equal(t, "senior", experienceLevel(9))
	assert.Equal(t, "lead", experienceLevel(10))
}

func TestRequiredYears_Variants(t *testing.T) {
	assert.Equal(t, 3, requiredYears("3+ years"))
	assert.Equal(t, 5, requiredYears("at least 5 yrs in production"))
	assert.Equal(t, 2, requiredYears("2 Years"))
	assert.Equal(t, 0, requiredYears("no numbers here"))
	assert.Equal(t, 0, requiredYears(""))
}
