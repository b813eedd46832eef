package fields

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ravi/jobmatch/internal/types"
)

var (
	titleCompanyPattern = regexp.MustCompile(`^(.+?)\s*[-\x{2013}]\s*(.+)$`)
	monthYearPattern    = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{4})\b`)
	yearRangePattern    = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:-|\x{2013}|to)\s*(\d{4}|present)\b`)
	presentPattern      = regexp.MustCompile(`(?i)\bpresent\b`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ExtractExperience walks the experience section line by line. A
// "title - company" line starts a new entry, a line carrying a date range
// fills in the current entry's dates, and anything else becomes description.
// Date lines are checked first so "Jan 2020 - Present" never spawns a bogus
// entry titled "Jan 2020".
func ExtractExperience(section string) []types.WorkExperience {
	var entries []types.WorkExperience
	var current *types.WorkExperience

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case isDateLine(line):
			if current != nil {
				applyExperienceDates(current, line)
			}
		case titleCompanyPattern.MatchString(line):
			if current != nil {
				entries = append(entries, *current)
			}
			m := titleCompanyPattern.FindStringSubmatch(line)
			current = &types.WorkExperience{
				Title:       strings.TrimSpace(m[1]),
				Company:     strings.TrimSpace(m[2]),
				Description: []string{},
			}
		case current != nil:
			current.Description = append(current.Description, line)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	if entries == nil {
		return []types.WorkExperience{}
	}
	return entries
}

func isDateLine(line string) bool {
	return monthYearPattern.MatchString(line) || yearRangePattern.MatchString(line)
}

// applyExperienceDates fills start/end from the first date range found on
// the line. A "present" keyword marks the entry current and leaves the end
// date nil.
func applyExperienceDates(entry *types.WorkExperience, line string) {
	isCurrent := presentPattern.MatchString(line)

	if matches := monthYearPattern.FindAllStringSubmatch(line, 2); len(matches) > 0 {
		entry.StartDate = monthYearDate(matches[0])
		if len(matches) > 1 && !isCurrent {
			entry.EndDate = monthYearDate(matches[1])
		}
	} else if m := yearRangePattern.FindStringSubmatch(line); m != nil {
		entry.StartDate = yearDate(m[1])
		if !strings.EqualFold(m[2], "present") {
			entry.EndDate = yearDate(m[2])
		}
	}

	if isCurrent {
		entry.IsCurrent = true
		entry.EndDate = nil
	}
}

func monthYearDate(match []string) *time.Time {
	month, ok := monthIndex[strings.ToLower(match[1])]
	if !ok {
		return nil
	}
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func yearDate(raw string) *time.Time {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &d
}
