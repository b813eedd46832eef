package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_FullEntry(t *testing.T) {
	section := `Education
Bachelor of Science, Computer Science, State University
2014 - 2018`

	entries := ExtractEducation(section)

	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Bachelor of Science", entry.Degree)
	assert.Equal(t, "Computer Science", entry.FieldOfStudy)
	assert.Equal(t, "State University", entry.Institution)
	assert.Equal(t, 2014, entry.StartYear)
	assert.Equal(t, 2018, entry.EndYear)
	assert.False(t, entry.IsCurrent)
}

func TestExtractEducation_NoInstitution(t *testing.T) {
	entries := ExtractEducation("Master of Science, Data Science")

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Data Science", entries[0].FieldOfStudy)
	assert.Equal(t, "", entries[0].Institution)
}

func TestExtractEducation_PresentMarksCurrent(t *testing.T) {
	section := `PhD, Machine Learning, Tech Institute
2021 - Present`

	entries := ExtractEducation(section)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsCurrent)
	assert.Equal(t, 2021, entries[0].StartYear)
	assert.Equal(t, 0, entries[0].EndYear)
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	section := `Master of Science, Computer Science, Tech University
2019 - 2021
Bachelor of Arts, Mathematics, Liberal College
2015 - 2019`

	entries := ExtractEducation(section)

	require.Len(t, entries, 2)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, 2019, entries[0].StartYear)
	assert.Equal(t, "Bachelor of Arts", entries[1].Degree)
	assert.Equal(t, 2015, entries[1].StartYear)
}

func TestExtractEducation_YearLineBeforeAnyEntryIgnored(t *testing.T) {
	assert.Empty(t, ExtractEducation("2014 - 2018"))
}

func TestExtractEducation_EmptySection(t *testing.T) {
	assert.Empty(t, ExtractEducation(""))
}
