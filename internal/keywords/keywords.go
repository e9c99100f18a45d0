package keywords

import "strings"

// Extraction is the vocabulary searched for in resume text.
var Extraction = []string{
	"javascript",
	"typescript",
	"react",
	"vue",
	"angular",
	"node",
	"python",
	"sql",
	"java",
	"aws",
	"azure",
	"scrum",
	"kanban",
	"figma",
	"ux",
	"ui",
	"tensorflow",
	"docker",
	"kubernetes",
	"salesforce",
	"excel",
	"power bi",
	"tableau",
	"data studio",
}

// Leadership terms promote a candidate to the senior tier regardless of experience.
var Leadership = []string{"leadership", "coordination", "management"}

// HighValue skills add to the score when a declared skill contains one of them.
var HighValue = []string{"python", "react", "node", "aws", "data", "ux", "sql"}

// Match returns the vocabulary entries found as substrings of haystack.
// The haystack is expected to be lowercased already. Entries are returned once,
// in vocabulary order.
func Match(haystack string, vocabulary []string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{}, len(vocabulary))

	for _, term := range vocabulary {
		if _, ok := seen[term]; ok {
			continue
		}
		if strings.Contains(haystack, term) {
			seen[term] = struct{}{}
			found = append(found, term)
		}
	}

	return found
}

// ContainsAny reports whether any vocabulary entry occurs in haystack.
func ContainsAny(haystack string, vocabulary []string) bool {
	for _, term := range vocabulary {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
