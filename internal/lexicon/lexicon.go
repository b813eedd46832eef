// Package lexicon holds the static skill dictionary and category rules.
// The data is read-only reference material, safe for unsynchronized
// concurrent reads.
package lexicon

import (
	"strings"

	"github.com/ravi/jobmatch/internal/types"
)

// dictionary lists every skill term the extractor recognizes, lowercase.
// Multi-word phrases are matched token-wise, so ordering here is irrelevant.
var dictionary = []string{
	// Programming languages
	"javascript", "python", "java", "c#", "c++", "php", "ruby", "go", "swift", "kotlin",
	"typescript", "rust", "scala", "r", "dart", "perl", "haskell", "elixir", "clojure",
	"erlang", "ocaml", "f#", "lua", "matlab", "groovy", "julia", "cobol", "fortran",
	"assembly", "bash", "powershell", "sql", "pl/sql", "t-sql", "nosql", "graphql",

	// Web development
	"html", "css", "sass", "less", "bootstrap", "tailwind", "material ui", "chakra ui",
	"react", "angular", "vue", "svelte", "next.js", "nuxt.js", "gatsby", "remix",
	"node.js", "express", "nestjs", "fastify", "koa", "hapi", "sails.js", "meteor",
	"django", "flask", "fastapi", "ruby on rails", "laravel", "symfony", "spring",
	"asp.net", "asp.net core", "play framework", "phoenix", "gin", "echo", "fiber",

	// Mobile development
	"react native", "flutter", "ionic", "xamarin", "swiftui", "jetpack compose",
	"android sdk", "ios sdk", "objective-c", "xcode", "android studio",

	// Databases
	"mongodb", "mysql", "postgresql", "sqlite", "microsoft sql server", "oracle",
	"redis", "cassandra", "couchbase", "dynamodb", "firebase", "firestore",
	"elasticsearch", "solr", "splunk", "neo4j", "arango db", "couchdb", "realm",

	// DevOps and cloud
	"docker", "kubernetes", "terraform", "ansible", "puppet", "chef", "jenkins",
	"github actions", "gitlab ci", "circleci", "travis ci", "argo cd", "flux",
	"aws", "amazon web services", "azure", "google cloud", "gcp", "ibm cloud",
	"oracle cloud", "digitalocean", "heroku", "vercel", "netlify", "cloudflare",

	// AI/ML
	"tensorflow", "pytorch", "keras", "scikit-learn", "opencv", "nltk", "spacy",
	"hugging face", "transformers", "langchain", "llama", "gpt", "bert",
	"dall-e", "stable diffusion", "computer vision",
	"natural language processing", "nlp", "neural networks", "deep learning",
	"reinforcement learning", "supervised learning", "unsupervised learning",

	// Tooling and practices
	"git", "github", "gitlab", "bitbucket", "jira", "confluence", "trello", "asana",
	"slack", "microsoft teams", "agile", "scrum", "kanban", "devops",
	"ci/cd", "tdd", "bdd", "rest", "grpc", "soap", "oauth", "jwt",
	"oauth2", "openid connect", "saml", "ldap",
	"microservices", "serverless", "lambda", "api gateway", "apache kafka",
	"rabbitmq", "apache spark", "hadoop", "hive", "hbase", "apache flink",
	"apache beam", "apache airflow", "apache nifi", "apache camel",
}

// canonicalTokens maps common variant spellings to the dictionary token they
// should match as.
var canonicalTokens = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"reactjs":    "react",
	"vuejs":      "vue",
	"nodejs":     "node",
	"postgres":   "postgresql",
	"py":         "python",
	"dockerfile": "docker",
}

// categoryRule pairs a category with the keywords that select it. Rules are
// evaluated in order and the first containment match wins.
type categoryRule struct {
	category types.SkillCategory
	keywords []string
}

var categoryRules = []categoryRule{
	{types.CategoryFrontend, []string{"javascript", "typescript", "react", "angular", "vue", "node"}},
	{types.CategoryBackend, []string{"python", "java", "c#", "go", "ruby", "php"}},
	{types.CategoryDatabase, []string{"sql", "mysql", "postgres", "mongodb", "redis"}},
	{types.CategoryDevOps, []string{"docker", "kubernetes", "aws", "azure", "gcp"}},
	{types.CategoryAIML, []string{"machine learning", "deep learning", "tensorflow", "pytorch", "nlp"}},
}

// Skills returns the full dictionary. Callers must not modify the slice.
func Skills() []string {
	return dictionary
}

// Canonical maps a variant token to its dictionary spelling, or returns the
// token unchanged when no variant is known.
func Canonical(token string) string {
	if c, ok := canonicalTokens[strings.ToLower(token)]; ok {
		return c
	}
	return token
}

// Category assigns a category to a skill name via ordered keyword
// containment. Unmatched skills fall through to CategoryOther.
func Category(skill string) types.SkillCategory {
	lower := strings.ToLower(skill)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return types.CategoryOther
}
