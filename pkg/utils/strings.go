package utils

import "strings"

// SplitList splits a separated list, trims every item and drops empty ones.
// For example, SplitList(" a, ,b ", ",") returns ["a", "b"].
func SplitList(s, sep string) []string {
	var result []string

	for _, item := range strings.Split(s, sep) {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}

	return result
}
