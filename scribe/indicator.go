package scribe

import "strings"

// maxIndicators caps how many indicators a single diff contributes.
const maxIndicators = 2

// Rule maps diff content to an indicator phrase. A rule hits when any
// substring in Any appears in the diff and every substring in All does.
// Matching is case-insensitive. Rules are evaluated in declaration order,
// so earlier rules take priority.
type Rule struct {
	Indicator string
	Any       []string
	All       []string
}

func (r Rule) matches(lowerDiff string) bool {
	if len(r.Any) == 0 && len(r.All) == 0 {
		return false
	}
	for _, s := range r.All {
		if !strings.Contains(lowerDiff, strings.ToLower(s)) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, s := range r.Any {
		if strings.Contains(lowerDiff, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// Analyzer scans diff text against ordered keyword rules to describe what
// changed in a file.
type Analyzer struct {
	notebooks []Rule
	code      []Rule
}

// NewAnalyzer builds an analyzer from per-category rule lists.
func NewAnalyzer(notebooks, code []Rule) *Analyzer {
	return &Analyzer{notebooks: notebooks, code: code}
}

// Analyze returns the first two matching indicators for a modified file's
// diff. It never returns an empty slice: when no rule hits, notebooks fall
// back to a generic label and code falls back to a size heuristic over
// added vs. removed lines.
func (a *Analyzer) Analyze(path, diffText string, category Category) []string {
	rules := a.code
	if category == CategoryNotebooks {
		rules = a.notebooks
	}

	lower := strings.ToLower(diffText)
	var hits []string
	for _, r := range rules {
		if r.matches(lower) {
			hits = append(hits, r.Indicator)
			if len(hits) == maxIndicators {
				break
			}
		}
	}
	if len(hits) > 0 {
		return hits
	}

	if category == CategoryNotebooks {
		return []string{"notebook updates"}
	}
	return []string{sizeIndicator(diffText)}
}

// sizeIndicator compares inserted and removed line counts when no keyword
// rule matched.
func sizeIndicator(diffText string) string {
	var added, removed int
	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			added++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			removed++
		}
	}
	switch {
	case added > removed*2:
		return "new code"
	case removed > added*2:
		return "code cleanup"
	default:
		return "code changes"
	}
}
