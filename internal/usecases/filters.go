package usecases

import "strings"

// List screens fetch the whole table and narrow in memory. Text fields match
// by case-sensitive substring, enum fields by exact equality; an empty filter
// value matches everything.

func substringMatch(value, want string) bool {
	return want == "" || strings.Contains(value, want)
}

func exactMatch(value, want string) bool {
	return want == "" || value == want
}
