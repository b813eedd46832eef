package main

import (
	"path/filepath"
	"strings"

	"github.com/ravi/jobmatch/internal/extraction"
)

// mimeForFile maps a resume file extension to the MIME type the extractor
// expects. Unknown extensions return an empty string so the extractor can
// reject them with a typed error.
func mimeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extraction.MIMEPDF
	case ".docx":
		return extraction.MIMEDocx
	case ".txt", ".text", ".md":
		return extraction.MIMEPlainText
	default:
		return ""
	}
}
