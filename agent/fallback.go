package agent

import (
	"regexp"
	"strings"
)

var queryTag = regexp.MustCompile(`(?s)<query>(.*?)</query>`)

// queryOperators are substrings that mark a reply as a bare query when the
// model forgot the <query> tags.
var queryOperators = []string{"ext:", "size:", "file:", "folder:", `:\`}

// BuildFallbackPrompt asks the model to translate userQuery into a search
// query wrapped in <query> tags.
func BuildFallbackPrompt(userQuery string) string {
	var sb strings.Builder
	sb.WriteString("Translate the user's request into an 'Everything' search query.\n")
	sb.WriteString("Output ONLY the query inside <query> tags.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Wrap paths in double quotes (e.g. \"C:\\Work\").\n")
	sb.WriteString("2. Do not include explanations.\n")
	sb.WriteString("Examples:\n")
	sb.WriteString("- 'Project excel files': <query>project ext:xlsx</query>\n")
	sb.WriteString("- 'Files in D:\\Work': <query>\"D:\\Work\" file:</query>\n")
	sb.WriteString("User: ")
	sb.WriteString(userQuery)
	return sb.String()
}

// ParseQueryTag returns the trimmed contents of the first <query> element in reply.
func ParseQueryTag(reply string) (string, bool) {
	m := queryTag.FindStringSubmatch(reply)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// DetectRawQuery returns the trimmed reply when it contains a query operator.
func DetectRawQuery(reply string) (string, bool) {
	if !containsAny(reply, queryOperators...) {
		return "", false
	}
	return strings.TrimSpace(reply), true
}

// ParseReply extracts a search query from a model reply, trying the <query>
// tag first and the operator heuristic second.
func ParseReply(reply string) (string, bool) {
	if q, ok := ParseQueryTag(reply); ok {
		return q, true
	}
	return DetectRawQuery(reply)
}
