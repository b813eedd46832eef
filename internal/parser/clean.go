package parser

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

// Clean normalizes line endings and whitespace while preserving line
// structure and letter case. The line-oriented extractors depend on the
// former; the capitalized-name heuristic depends on the latter.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
