package nscache

import (
	"regexp"
	"strings"
)

/*
compilePattern turns a wildcard pattern into an anchored regular expression.

The grammar is small on purpose: `*` matches any run of characters including
none, `?` matches exactly one character, and everything else is literal.
There are no character classes and the separator has no special meaning, so
a pattern like "user:*" matches every key under the "user:" prefix.
*/
func compilePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
