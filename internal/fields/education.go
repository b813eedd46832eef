package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ravi/jobmatch/internal/types"
)

var (
	degreeLinePattern = regexp.MustCompile(`^([^,]+),\s*([^,]+?)(?:,\s*(.+))?$`)
	eduYearPattern    = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:-|\x{2013}|to)\s*(\d{4}|present)\b`)
)

// ExtractEducation walks the education section line by line. A
// "degree, field[, institution]" line starts a new entry; a later line
// carrying a "YYYY-YYYY" or "YYYY-Present" range fills its years. Lines
// matching neither pattern are skipped.
func ExtractEducation(section string) []types.Education {
	var entries []types.Education
	var current *types.Education

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := degreeLinePattern.FindStringSubmatch(line); m != nil && !eduYearPattern.MatchString(line) {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.Education{
				Degree:       strings.TrimSpace(m[1]),
				FieldOfStudy: strings.TrimSpace(m[2]),
				Institution:  strings.TrimSpace(m[3]),
			}
			continue
		}

		if current == nil {
			continue
		}
		if m := eduYearPattern.FindStringSubmatch(line); m != nil {
			current.StartYear, _ = strconv.Atoi(m[1])
			if strings.EqualFold(m[2], "present") {
				current.IsCurrent = true
			} else {
				current.EndYear, _ = strconv.Atoi(m[2])
			}
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	if entries == nil {
		return []types.Education{}
	}
	return entries
}
