package scoring

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/ravi/jobmatch/internal/types"
)

// requiredYearsPattern pulls a "<N>+ years" style requirement out of free
// text. Absence means no requirement.
var requiredYearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)`)

// matchExperience totals the years across all positions and compares them to
// the requirement parsed from the job's free text. Partial coverage earns
// proportional credit, never above 100.
func matchExperience(experience []types.WorkExperience, requirement string, now time.Time) types.ExperienceMatch {
	years := totalYears(experience, now)
	required := requiredYears(requirement)

	score := 100
	if required > 0 && years < required {
		score = int(math.Round(float64(years) / float64(required) * 100))
	}

	return types.ExperienceMatch{
		Score:         clampScore(score),
		Years:         years,
		RequiredYears: required,
		Level:         experienceLevel(years),
	}
}

// totalYears sums max(0, end-start) per entry. An open-ended entry counts up
// to now; an entry with no start date contributes nothing.
func totalYears(experience []types.WorkExperience, now time.Time) int {
	total := 0
	for _, entry := range experience {
		if entry.StartDate == nil {
			continue
		}
		endYear := now.Year()
		if entry.EndDate != nil {
			endYear = entry.EndDate.Year()
		}
		if span := endYear - entry.StartDate.Year(); span > 0 {
			total += span
		}
	}
	return total
}

func requiredYears(requirement string) int {
	m := requiredYearsPattern.FindStringSubmatch(requirement)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func experienceLevel(years int) string {
	switch {
	case years < 2:
		return "entry"
	case years < 5:
		return "mid"
	case years < 10:
		return "senior"
	default:
		return "lead"
	}
}
