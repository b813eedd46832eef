package main

import (
	"testing"

	"github.com/ravi/jobmatch/internal/extraction"
	"github.com/stretchr/testify/assert"
)

func TestMimeForFile(t *testing.T) {
	assert.Equal(t, extraction.MIMEPDF, mimeForFile("resume.pdf"))
	assert.Equal(t, extraction.MIMEPDF, mimeForFile("/tmp/Resume.PDF"))
	assert.Equal(t, extraction.MIMEDocx, mimeForFile("resume.docx"))
	assert.Equal(t, extraction.MIMEPlainText, mimeForFile("resume.txt"))
	assert.Equal(t, extraction.MIMEPlainText, mimeForFile("notes.md"))
	assert.Equal(t, "", mimeForFile("resume.doc"))
	assert.Equal(t, "", mimeForFile("resume"))
}
