package question

import "strings"

// SearchByText returns the questions whose text contains term as a
// case-insensitive substring, preserving input order. An empty term matches
// everything when emptyMatchesAll is set (the SQL LIKE '%%' reading);
// otherwise it matches nothing.
func SearchByText(items []Question, term string, emptyMatchesAll bool) []Question {
	if term == "" {
		if emptyMatchesAll {
			return append([]Question{}, items...)
		}
		return []Question{}
	}

	needle := strings.ToLower(term)
	matched := []Question{}
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matched = append(matched, q)
		}
	}
	return matched
}
