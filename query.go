package lumi

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ItemKind restricts a query to files, folders or both.
type ItemKind int

// ItemKind constants.
const (
	KindAny ItemKind = iota
	KindFile
	KindFolder
)

// SizeOp compares a file size against a bound.
type SizeOp string

// SizeOp constants.
const (
	SizeEQ SizeOp = "="
	SizeGT SizeOp = ">"
	SizeGE SizeOp = ">="
	SizeLT SizeOp = "<"
	SizeLE SizeOp = "<="
)

// SizeFilter is a parsed size: operator.
type SizeFilter struct {
	Op    SizeOp
	Bytes int64
}

// Query is the parsed form of a search-engine query string. It covers the
// subset of the Everything search syntax the gateway produces: plain terms,
// quoted paths, file:, folder:, childcount:, ext:, size: and dm:today.
type Query struct {
	// Terms must all appear in the item name, case-insensitively.
	Terms []string

	// Paths must all appear in the full path, case-insensitively.
	Paths []string

	Kind          ItemKind
	ChildCount    *int
	Extensions    []string
	Sizes         []SizeFilter
	ModifiedToday bool
}

// ParseQuery parses a search-engine query string.
// Returns EINVALID for operators outside the supported vocabulary.
func ParseQuery(s string) (*Query, error) {
	q := &Query{}
	for _, tok := range splitQuery(s) {
		if err := q.parseToken(tok); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *Query) parseToken(tok queryToken) error {
	if tok.quoted || isPathTerm(tok.text) {
		q.Paths = append(q.Paths, tok.text)
		return nil
	}

	name, value, ok := strings.Cut(tok.text, ":")
	if !ok {
		q.Terms = append(q.Terms, tok.text)
		return nil
	}

	switch strings.ToLower(name) {
	case "file":
		q.Kind = KindFile
		return q.parseRest(value)
	case "folder":
		q.Kind = KindFolder
		return q.parseRest(value)
	case "childcount":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return Errorf(EINVALID, "invalid childcount %q", value)
		}
		q.ChildCount = &n
		return nil
	case "ext":
		for _, ext := range strings.Split(value, ";") {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				q.Extensions = append(q.Extensions, ext)
			}
		}
		if len(q.Extensions) == 0 {
			return Errorf(EINVALID, "ext: requires at least one extension")
		}
		return nil
	case "size":
		f, err := parseSize(value)
		if err != nil {
			return err
		}
		q.Sizes = append(q.Sizes, f)
		return nil
	case "dm", "datemodified":
		if !strings.EqualFold(value, "today") {
			return Errorf(EINVALID, "unsupported date %q", value)
		}
		q.ModifiedToday = true
		return nil
	}
	return Errorf(EINVALID, "unsupported operator %q", name+":")
}

// parseRest handles the remainder of a modifier such as file:report or
// folder:childcount:0.
func (q *Query) parseRest(rest string) error {
	if rest == "" {
		return nil
	}
	return q.parseToken(queryToken{text: rest})
}

// isPathTerm reports whether a bare term names a location rather than a name.
func isPathTerm(s string) bool {
	if len(s) >= 2 && s[1] == ':' && isASCIILetter(s[0]) {
		return true
	}
	return strings.ContainsAny(s, `\/`)
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func parseSize(value string) (SizeFilter, error) {
	f := SizeFilter{Op: SizeEQ}
	for _, op := range []SizeOp{SizeGE, SizeLE, SizeGT, SizeLT, SizeEQ} {
		if strings.HasPrefix(value, string(op)) {
			f.Op = op
			value = value[len(op):]
			break
		}
	}

	v := strings.ToLower(value)
	mult := int64(1)
	for _, unit := range []struct {
		suffix string
		mult   int64
	}{
		{"kb", 1 << 10},
		{"mb", 1 << 20},
		{"gb", 1 << 30},
		{"b", 1},
	} {
		if strings.HasSuffix(v, unit.suffix) {
			v = strings.TrimSuffix(v, unit.suffix)
			mult = unit.mult
			break
		}
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return SizeFilter{}, Errorf(EINVALID, "invalid size %q", value)
	}
	if n > math.MaxInt64/mult {
		return SizeFilter{}, Errorf(EINVALID, "size %q out of range", value)
	}
	f.Bytes = n * mult
	return f, nil
}

type queryToken struct {
	text   string
	quoted bool
}

// splitQuery splits on whitespace outside double quotes. A token made of a
// single quoted section is marked as quoted and returned without the quotes.
func splitQuery(s string) []queryToken {
	var (
		tokens  []queryToken
		cur     strings.Builder
		inQuote bool
		quoted  bool
		started bool
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, queryToken{text: cur.String(), quoted: quoted})
		}
		cur.Reset()
		quoted, started = false, false
	}
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			if !started {
				quoted = true
			}
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			started = true
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
