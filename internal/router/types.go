package router

import "layover-os/internal/model"

// Intent is the routing decision for one turn.
type Intent string

const (
	IntentRetrieval   Intent = "retrieval"
	IntentLookup      Intent = "lookup"
	IntentTransaction Intent = "transaction"
)

// Intents lists every routable intent. Dispatch tables must cover all of them.
var Intents = []Intent{IntentRetrieval, IntentLookup, IntentTransaction}

// Decision is the classifier output. Patch only ever touches LocationContext.
type Decision struct {
	Intent Intent
	Patch  model.Patch
	Rule   string
}

// Rule is one entry of the ordered classification table.
type Rule struct {
	Name   string
	Intent Intent
	Match  func(s signals) bool
}

// signals is the pre-tokenized view of a turn shared by all rules.
type signals struct {
	text   string
	tokens map[string]struct{}
}

func (s signals) has(words ...string) bool {
	for _, w := range words {
		if _, ok := s.tokens[w]; ok {
			return true
		}
	}
	return false
}
