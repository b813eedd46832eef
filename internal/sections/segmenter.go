// Package sections splits resume text into labeled regions using header
// keyword heuristics.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Section labels a logical region of a resume.
type Section string

const (
	Experience Section = "experience"
	Education  Section = "education"
	Skills     Section = "skills"
	Projects   Section = "projects"
)

// headerPatterns recognize the section headings resumes commonly use. Each
// section's region runs from its heading to the next recognized heading of a
// different section, or end of text.
var headerPatterns = map[Section]*regexp.Regexp{
	Experience: regexp.MustCompile(`(?i)\b(work\s+history|employment\s+history|professional\s+experience|experience)\b`),
	Education:  regexp.MustCompile(`(?i)\b(education|academic\s+background|qualifications)\b`),
	Skills:     regexp.MustCompile(`(?i)\b(technical\s+skills?|skills?|technologies)\b`),
	Projects:   regexp.MustCompile(`(?i)\b(personal\s+projects?|projects?|portfolio)\b`),
}

type header struct {
	section Section
	start   int
}

// Split maps each recognized section to its captured substring. Sections
// whose heading never appears are simply absent from the result; downstream
// extractors treat a missing section as an empty input, never an error.
func Split(text string) map[Section]string {
	headers := make([]header, 0, len(headerPatterns))
	for section, pattern := range headerPatterns {
		if loc := pattern.FindStringIndex(text); loc != nil {
			headers = append(headers, header{section: section, start: loc[0]})
		}
	}

	sort.Slice(headers, func(i, j int) bool { return headers[i].start < headers[j].start })

	result := make(map[Section]string, len(headers))
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		segment := strings.TrimSpace(text[h.start:end])
		if segment != "" {
			result[h.section] = segment
		}
	}
	return result
}
