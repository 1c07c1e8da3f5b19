package markercheck

import (
	"fmt"
	"regexp"
)

// Pattern is a regular expression that is matched against file and
// directory names. It can be decoded from command line flags.
type Pattern struct {
	Expression *regexp.Regexp
}

// MustPattern compiles expr and returns it as a pattern. It panics if expr
// is not a valid regular expression.
func MustPattern(expr string) Pattern {
	return Pattern{Expression: regexp.MustCompile(expr)}
}

// UnmarshalText compiles the pattern from its textual form.
func (p *Pattern) UnmarshalText(text []byte) error {
	re, err := regexp.Compile(string(text))
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", text, err)
	}
	p.Expression = re
	return nil
}

// Match reports whether name matches the pattern. A zero pattern never
// matches.
func (p Pattern) Match(name string) bool {
	if p.Expression == nil {
		return false
	}
	return p.Expression.MatchString(name)
}

// String returns the source text of the pattern.
func (p Pattern) String() string {
	if p.Expression == nil {
		return ""
	}
	return p.Expression.String()
}
