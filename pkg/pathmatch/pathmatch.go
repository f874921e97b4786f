// Package pathmatch matches paths against shell patterns the way find -path does.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME, so unlike filepath.Match a
// wildcard crosses directory separators:
//   - * matches any run of characters, / included
//   - ? matches exactly one character, / included
//   - [...] matches one character from the set, [!...] one outside it
//   - \ makes the next character literal
package pathmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	// ErrUnclosedClass is returned for a '[' without its closing ']'.
	ErrUnclosedClass = errors.New("unclosed character class")

	// ErrTrailingEscape is returned for a pattern ending in a lone backslash.
	ErrTrailingEscape = errors.New("trailing backslash")
)

// Match reports whether path matches pattern.
func Match(pattern, path string) (bool, error) {
	re, err := compile(pattern)
	if err != nil {
		return false, err
	}

	return re.MatchString(path), nil
}

// Matcher holds a compiled set of patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher compiles patterns once for matching many paths.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		m.patterns = append(m.patterns, re)
	}

	return m, nil
}

// MatchAny reports whether path matches at least one pattern.
// A Matcher without patterns matches nothing.
func (m *Matcher) MatchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Escape quotes every metacharacter in s, so the result matches s literally.
func Escape(s string) string {
	var buf strings.Builder

	for _, r := range s {
		if strings.ContainsRune(`*?[\`, r) {
			buf.WriteByte('\\')
		}

		buf.WriteRune(r)
	}

	return buf.String()
}

var compiled sync.Map //nolint:gochecknoglobals // compiled patterns are reused across matchers

func compile(pattern string) (*regexp.Regexp, error) {
	if v, ok := compiled.Load(pattern); ok {
		re, _ := v.(*regexp.Regexp) //nolint:errcheck // only *regexp.Regexp is stored

		return re, nil
	}

	expr, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w in pattern %q", err, pattern)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	compiled.Store(pattern, re)

	return re, nil
}

// translate rewrites a pattern as an anchored regular expression.
func translate(pattern string) (string, error) {
	var buf strings.Builder

	buf.WriteString("^")

	for pos := 0; pos < len(pattern); {
		switch c := pattern[pos]; c {
		case '*':
			buf.WriteString(".*")

			pos++
		case '?':
			buf.WriteString(".")

			pos++
		case '[':
			end, err := classEnd(pattern, pos)
			if err != nil {
				return "", err
			}

			class := pattern[pos : end+1]
			if len(class) > 2 && class[1] == '!' {
				class = "[^" + class[2:]
			}

			buf.WriteString(class)

			pos = end + 1
		case '\\':
			if pos+1 >= len(pattern) {
				return "", ErrTrailingEscape
			}

			buf.WriteString(regexp.QuoteMeta(pattern[pos+1 : pos+2]))

			pos += 2
		default:
			buf.WriteString(regexp.QuoteMeta(string(c)))

			pos++
		}
	}

	buf.WriteString("$")

	return buf.String(), nil
}

// classEnd returns the index of the ']' closing the class opened at pos.
// A ']' directly after "[" or "[!" is a literal member.
func classEnd(pattern string, pos int) (int, error) {
	idx := pos + 1

	if idx < len(pattern) && pattern[idx] == '!' {
		idx++
	}

	if idx < len(pattern) && pattern[idx] == ']' {
		idx++
	}

	if end := strings.IndexByte(pattern[idx:], ']'); end >= 0 {
		return idx + end, nil
	}

	return 0, ErrUnclosedClass
}
