package router

import "strings"

// Router classifies a turn into exactly one intent.
type Router interface {
	Classify(text, location string) Decision
	IsScopeCode(code string) bool
}

// Classifier is a deterministic rule-table router. It is safe for concurrent use.
type Classifier struct {
	codes map[string]struct{}
	rules []Rule
}

var _ Router = (*Classifier)(nil)

// New creates a Classifier recognizing the given scope codes.
// An empty list falls back to DefaultScopeCodes.
func New(scopeCodes []string) *Classifier {
	if len(scopeCodes) == 0 {
		scopeCodes = DefaultScopeCodes
	}

	codes := make(map[string]struct{}, len(scopeCodes))
	for _, c := range scopeCodes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			codes[c] = struct{}{}
		}
	}

	return &Classifier{
		codes: codes,
		rules: defaultRules(),
	}
}

// IsScopeCode reports whether code is a registered location code.
func (c *Classifier) IsScopeCode(code string) bool {
	_, ok := c.codes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}
