// Package agent translates natural language file-search requests into
// search-engine queries. Requests are matched against an ordered rule table
// first; unmatched requests are handed to a language model that is asked to
// write the query itself.
package agent

import (
	"regexp"
	"strings"
)

// normalizer rewrites Korean filler words so drive tokens stand alone:
// "드라이브" (drive) becomes the drive separator, "에서" (from) and the
// locative "에 " become spaces. The trailing space on "에 " keeps words that
// merely contain the particle intact.
var normalizer = strings.NewReplacer(
	"드라이브", ":",
	"에서", " ",
	"에 ", " ",
)

var drivePattern = regexp.MustCompile(`^[a-zA-Z]:`)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// ExtractPath returns the first whitespace-separated token of userQuery that
// starts with a drive letter and a colon, with quote characters removed.
// Returns "" when no token qualifies.
func ExtractPath(userQuery string) string {
	for _, token := range strings.Fields(normalizer.Replace(userQuery)) {
		if drivePattern.MatchString(token) {
			return quoteStripper.Replace(token)
		}
	}
	return ""
}
