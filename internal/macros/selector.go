package macros

import (
	"regexp"
	"strings"

	"github.com/macosusesdk/automationd/internal/apierr"
)

// Selector is a parsed element selector. At most one text criterion is set;
// a bare string is a role match.
type Selector struct {
	Role         string
	Text         string
	TextContains string
	TextRegex    *regexp.Regexp
	textRegexSrc string
}

// ParseSelector parses the prefix grammar ("role:", "text:", "textContains:",
// "textRegex:"). A string without a recognized prefix selects by role.
func ParseSelector(s string) (*Selector, error) {
	switch {
	case strings.HasPrefix(s, "role:"):
		return &Selector{Role: strings.TrimPrefix(s, "role:")}, nil
	case strings.HasPrefix(s, "text:"):
		return &Selector{Text: strings.TrimPrefix(s, "text:")}, nil
	case strings.HasPrefix(s, "textContains:"):
		return &Selector{TextContains: strings.TrimPrefix(s, "textContains:")}, nil
	case strings.HasPrefix(s, "textRegex:"):
		src := strings.TrimPrefix(s, "textRegex:")
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, apierr.InvalidArgument(apierr.ReasonInvalidSelector,
				"invalid selector regex: "+err.Error(),
				map[string]string{"selector": s})
		}
		return &Selector{TextRegex: re, textRegexSrc: src}, nil
	default:
		return &Selector{Role: s}, nil
	}
}

// RegexSource returns the raw pattern for adapters that match server-side.
func (s *Selector) RegexSource() string { return s.textRegexSrc }
