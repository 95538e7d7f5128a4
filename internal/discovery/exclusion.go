package discovery

import "strings"

// MatchesExclusion reports whether name is excluded by any of patterns.
// A pattern ending in "*" matches every name with the preceding literal prefix,
// so "django.*" excludes "django.contrib.admin" but not "djangoapp".
// Any other pattern must equal name exactly.
func MatchesExclusion(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if name == pattern {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
