package lexicon

import (
	"testing"

	"github.com/ravi/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCategory_OrderedRules(t *testing.T) {
	assert.Equal(t, types.CategoryFrontend, Category("react"))
	assert.Equal(t, types.CategoryFrontend, Category("node.js"))
	assert.Equal(t, types.CategoryBackend, Category("python"))
	assert.Equal(t, types.CategoryDevOps, Category("kubernetes"))
	assert.Equal(t, types.CategoryAIML, Category("tensorflow"))
	assert.Equal(t, types.CategoryOther, Category("jira"))
}

func TestCategory_FirstMatchWins(t *testing.T) {
	// "django" contains "go", so the backend rule fires before the
	// database rules are ever consulted. The containment rules are
	// intentionally coarse.
	assert.Equal(t, types.CategoryBackend, Category("django"))
	assert.Equal(t, types.CategoryDatabase, Category("mysql"))
}

func TestCategory_CaseInsensitive(t *testing.T) {
	assert.Equal(t, types.CategoryFrontend, Category("React"))
	assert.Equal(t, types.CategoryDevOps, Category("AWS"))
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "go", Canonical("golang"))
	assert.Equal(t, "javascript", Canonical("js"))
	assert.Equal(t, "kubernetes", Canonical("k8s"))
	assert.Equal(t, "rust", Canonical("rust"))
}

func TestSkills_ContainsCoreEntries(t *testing.T) {
	skills := Skills()
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "react native")
	assert.NotEmpty(t, skills)
}
