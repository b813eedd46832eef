package scoring

import (
	"fmt"
	"strings"

	"github.com/ravi/jobmatch/internal/types"
)

// buildExplanation renders the sub-scores as human-readable sentences, in a
// fixed order: skills, experience, education, then missing-skill detail.
func buildExplanation(skill types.SkillMatch, experience types.ExperienceMatch, education types.EducationMatch) []string {
	explanation := make([]string, 0, 4)

	switch {
	case skill.Score == 100:
		explanation = append(explanation, "All required skills are a perfect match!")
	case skill.Score >= 80:
		explanation = append(explanation, "Strong skill match with most required skills present.")
	case skill.Score >= 50:
		explanation = append(explanation, "Partial skill match with some gaps in required skills.")
	default:
		explanation = append(explanation, "Limited match with required skills.")
	}

	if experience.RequiredYears > 0 {
		if experience.Years >= experience.RequiredYears {
			explanation = append(explanation, fmt.Sprintf(
				"Meets experience requirement (%d years vs %d required).",
				experience.Years, experience.RequiredYears))
		} else {
			explanation = append(explanation, fmt.Sprintf(
				"Experience is below requirement (%d years vs %d required).",
				experience.Years, experience.RequiredYears))
		}
	}

	switch {
	case education.HasDegree && education.Degree != "":
		explanation = append(explanation, fmt.Sprintf("Education requirement met with %s degree.", education.Degree))
	case education.HasDegree:
		explanation = append(explanation, "No specific education requirement stated.")
	case education.Score > 0:
		explanation = append(explanation, "Partial match on education requirements.")
	default:
		explanation = append(explanation, "Education does not meet the specified requirements.")
	}

	if len(skill.MissingSkills) > 0 {
		shown := skill.MissingSkills
		more := ""
		if len(shown) > 3 {
			more = fmt.Sprintf(" and %d more", len(shown)-3)
			shown = shown[:3]
		}
		explanation = append(explanation, fmt.Sprintf("Missing skills: %s%s.", strings.Join(shown, ", "), more))
	}

	return explanation
}
