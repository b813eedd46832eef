// Package fields extracts structured records from resume text. Every
// extractor is a pure function of its input: absent data yields empty
// results, never an error.
package fields

import (
	"regexp"

	"github.com/ravi/jobmatch/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[a-zA-Z0-9-]+`)

	// Best-effort name guess: the first capitalized two-or-more-word
	// sequence at the start of a line.
	namePattern = regexp.MustCompile(`(?m)^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)
)

// ExtractContact scans the whole resume text for contact details. Fields
// that cannot be found are left as empty strings.
func ExtractContact(text string) types.Contact {
	contact := types.Contact{
		Name:  namePattern.FindString(text),
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
	if profile := linkedinPattern.FindString(text); profile != "" {
		contact.LinkedIn = "https://" + profile
	}
	if profile := githubPattern.FindString(text); profile != "" {
		contact.GitHub = "https://" + profile
	}
	return contact
}
