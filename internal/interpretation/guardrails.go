package interpretation

import (
	"regexp"
	"strings"
)

// bannedWords is checked in order; multi-word phrases must appear before any
// single word they contain would mask them.
var bannedWords = []string{
	"diagnosis",
	"diagnose",
	"disorder",
	"trauma",
	"therapy",
	"therapist",
	"depression",
	"anxiety",
	"bipolar",
	"ocd",
	"ptsd",
	"mental illness",
	"mental health",
	"sick",
	"disease",
	"prescription",
	"medication",
	"cure",
	"will happen",
	"will be",
	"will have",
	"you will",
	"you should",
	"you must",
	"you need to",
	"advice",
	"recommend",
	"certainly",
	"definitely",
	"guaranteed",
	"100%",
}

var (
	bannedPatterns = compileBannedPatterns()
	removedMarker  = regexp.MustCompile(`\s*\[removed\]\s*`)
	multiSpace     = regexp.MustCompile(`\s+`)
)

func compileBannedPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(bannedWords))
	for _, word := range bannedWords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return patterns
}

func stripBannedWords(text string) string {
	result := text
	for _, pattern := range bannedPatterns {
		result = pattern.ReplaceAllString(result, "[removed]")
	}
	result = removedMarker.ReplaceAllString(result, " ")
	result = multiSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// SanitizeOutput removes clinical, predictive, and prescriptive wording from
// generated text. Whole-word matches only: "skill" passes, "sick" does not.
func SanitizeOutput(output string) string {
	return stripBannedWords(output)
}
