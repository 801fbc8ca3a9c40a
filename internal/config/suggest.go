package config

import "github.com/sahilm/fuzzy"

// SuggestNetwork returns the closest match for input among names
func SuggestNetwork(input string, names []string) (string, bool) {
	if input == "" || len(names) == 0 {
		return "", false
	}
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
