package agent

import (
	"strings"

	"github.com/fwojciec/lumi"
)

// Intent is a classified request: the query to run and how to sort it.
type Intent struct {
	Rule  string
	Query string
	Sort  lumi.SortMode
}

// Rule maps a keyword set to a query template. Template may reference the
// quoted path with {path}; the expanded template is trimmed.
type Rule struct {
	Name     string
	Keywords []string
	Template string
	Sort     lumi.SortMode

	// Refine optionally picks a different template based on the lower-cased
	// query. It returns "" to keep Template.
	Refine func(query string) string
}

// Rules is evaluated in order and the first rule with a matching keyword wins.
// Keyword sets overlap in content (e.g. "empty" and "recent" in one request),
// so order is significant.
var Rules = []Rule{
	{
		Name:     "empty-folder",
		Keywords: []string{"빈 ", "비어있는", "empty"},
		Template: "{path} folder:childcount:0",
		Sort:     lumi.SortDefault,
	},
	{
		Name:     "large-file",
		Keywords: []string{"큰", "많은", "large", "biggest", "highest", "용량"},
		Template: "{path} file:",
		Sort:     lumi.SortSizeDesc,
	},
	{
		Name:     "recent-file",
		Keywords: []string{"최근", "recent", "오늘", "today", "방금", "newest"},
		Template: "{path} file:",
		Sort:     lumi.SortDateModifiedDesc,
		Refine: func(query string) string {
			if containsAny(query, "오늘", "today") {
				return "{path} dm:today file:"
			}
			return ""
		},
	},
}

// Match reports whether the lower-cased query contains one of the rule keywords.
func (r *Rule) Match(query string) bool {
	return containsAny(query, r.Keywords...)
}

// Build expands the rule template for the lower-cased query and path token.
func (r *Rule) Build(query, path string) string {
	tmpl := r.Template
	if r.Refine != nil {
		if t := r.Refine(query); t != "" {
			tmpl = t
		}
	}
	return strings.TrimSpace(strings.ReplaceAll(tmpl, "{path}", quotePath(path)))
}

// Classify matches userQuery against rules. The path token is used verbatim;
// only the query is lower-cased for keyword matching.
func Classify(rules []Rule, userQuery, path string) (Intent, bool) {
	query := strings.ToLower(userQuery)
	for i := range rules {
		r := &rules[i]
		if r.Match(query) {
			return Intent{Rule: r.Name, Query: r.Build(query, path), Sort: r.Sort}, true
		}
	}
	return Intent{}, false
}

func quotePath(path string) string {
	if path == "" {
		return ""
	}
	return `"` + path + `"`
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
