package scoring

import (
	"regexp"
	"strings"

	"github.com/ravi/jobmatch/internal/types"
)

var (
	bachelorPattern  = regexp.MustCompile(`(?i)\b(bachelor|b\.?s\.?|b\.?a\.?)\b`)
	masterPattern    = regexp.MustCompile(`(?i)\b(master|m\.?s\.?|m\.?a\.?)\b`)
	doctoratePattern = regexp.MustCompile(`(?i)\b(ph\.?d|doctorate)\b`)
)

// matchEducation applies a strict degree hierarchy: a doctorate requirement
// is satisfied only by a doctorate, a master's by master's or doctorate, a
// bachelor's by any of the three. A resume holding some education that still
// misses a stated requirement keeps a partial-credit floor of 30 rather
// than dropping to zero.
func matchEducation(education []types.Education, requirement string) types.EducationMatch {
	requirementLower := strings.ToLower(requirement)
	requiresBachelor := strings.Contains(requirementLower, "bachelor")
	requiresMaster := strings.Contains(requirementLower, "master")
	requiresDoctorate := doctoratePattern.MatchString(requirementLower)

	if !requiresBachelor && !requiresMaster && !requiresDoctorate {
		// The job states no degree requirement at all.
		return types.EducationMatch{Score: 100, HasDegree: true, Degree: ""}
	}
	if len(education) == 0 {
		return types.EducationMatch{Score: 0, HasDegree: false, Degree: ""}
	}

	var hasBachelor, hasMaster, hasDoctorate bool
	for _, entry := range education {
		if bachelorPattern.MatchString(entry.Degree) {
			hasBachelor = true
		}
		if masterPattern.MatchString(entry.Degree) {
			hasMaster = true
		}
		if doctoratePattern.MatchString(entry.Degree) {
			hasDoctorate = true
		}
	}

	switch {
	case requiresDoctorate && hasDoctorate:
		return types.EducationMatch{Score: 100, HasDegree: true, Degree: "phd"}
	case requiresMaster && (hasMaster || hasDoctorate):
		return types.EducationMatch{Score: 90, HasDegree: true, Degree: highestDegree(false, hasMaster, hasDoctorate)}
	case requiresBachelor && (hasBachelor || hasMaster || hasDoctorate):
		return types.EducationMatch{Score: 80, HasDegree: true, Degree: highestDegree(hasBachelor, hasMaster, hasDoctorate)}
	default:
		// Some education exists but misses the stated requirement.
		return types.EducationMatch{Score: 30, HasDegree: false, Degree: ""}
	}
}

func highestDegree(hasBachelor, hasMaster, hasDoctorate bool) string {
	switch {
	case hasDoctorate:
		return "phd"
	case hasMaster:
		return "masters"
	case hasBachelor:
		return "bachelors"
	default:
		return ""
	}
}
