package scoring

import (
	"math"
	"strings"

	"github.com/ravi/jobmatch/internal/types"
)

// matchSkills counts how many required skills appear in the resume. A
// required skill counts as matched when any resume skill name contains it or
// is contained by it; the bidirectional containment deliberately tolerates
// phrasing variants like "js" against "javascript". A job with no required
// skills is trivially satisfied.
func matchSkills(resumeSkills []types.ExtractedSkill, requiredSkills []string) types.SkillMatch {
	if len(requiredSkills) == 0 {
		return types.SkillMatch{Score: 100, MatchedSkills: []string{}, MissingSkills: []string{}}
	}

	resumeNames := make([]string, 0, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeNames = append(resumeNames, strings.ToLower(s.Name))
	}

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	for _, required := range requiredSkills {
		requiredLower := strings.ToLower(required)
		if resumeHasSkill(resumeNames, requiredLower) {
			matched = append(matched, requiredLower)
		} else {
			missing = append(missing, requiredLower)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(requiredSkills)) * 100))
	return types.SkillMatch{
		Score:         score,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

func resumeHasSkill(resumeNames []string, required string) bool {
	for _, name := range resumeNames {
		if strings.Contains(name, required) || strings.Contains(required, name) {
			return true
		}
	}
	return false
}
