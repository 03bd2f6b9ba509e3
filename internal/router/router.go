package router

import (
	"strings"
	"unicode"

	"layover-os/internal/model"
)

// defaultRules is evaluated top to bottom; the first match wins.
func defaultRules() []Rule {
	return []Rule{
		{
			Name:   RuleStructuredKey,
			Intent: IntentLookup,
			Match:  func(s signals) bool { return structuredKeyPattern.MatchString(s.text) },
		},
		{
			Name:   RuleLookupKeyword,
			Intent: IntentLookup,
			Match:  func(s signals) bool { return s.has(lookupKeywords...) },
		},
		{
			Name:   RuleForwardPlan,
			Intent: IntentLookup,
			Match: func(s signals) bool {
				return s.has(planningVerbs...) && s.has(destinationPrepositions...)
			},
		},
		{
			Name:   RuleTransaction,
			Intent: IntentTransaction,
			Match:  func(s signals) bool { return s.has(transactionKeywords...) },
		},
	}
}

// Classify returns the routing decision for text. It never fails: a turn no
// rule matches, including an empty one, is routed to retrieval.
// A registered scope code in the text is reported in the patch but does not
// influence the route.
func (c *Classifier) Classify(text, location string) Decision {
	s := signals{text: text, tokens: tokenSet(text)}

	decision := Decision{Intent: IntentRetrieval, Rule: RuleDefault}
	for _, r := range c.rules {
		if r.Match(s) {
			decision.Intent = r.Intent
			decision.Rule = r.Name
			break
		}
	}

	if code, ok := c.detectScope(text); ok {
		decision.Patch.LocationContext = model.StringPtr(code)
	}

	return decision
}

// detectScope returns the first registered code appearing as a whole word in text.
func (c *Classifier) detectScope(text string) (string, bool) {
	for _, word := range splitWords(text) {
		code := strings.ToUpper(word)
		if _, ok := c.codes[code]; ok {
			return code, true
		}
	}
	return "", false
}

// ExtractStructuredKey returns the first flight-number-like key in text, upper-cased.
func ExtractStructuredKey(text string) (string, bool) {
	m := structuredKeyPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]), true
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
