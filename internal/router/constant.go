package router

import "regexp"

// DefaultScopeCodes are the airports the classifier recognizes when none are configured.
var DefaultScopeCodes = []string{"SFO", "JFK", "DEN"}

// structuredKeyPattern matches a flight number such as UA400 or dl1234.
var structuredKeyPattern = regexp.MustCompile(`(?i)\b([a-z]{2}\d{3,4})\b`)

var (
	// Place words such as gate or departure hall also describe amenity
	// locations, so they are not lookup signals.
	lookupKeywords          = []string{"flight", "flights", "fly", "flying", "trip", "status"}
	planningVerbs           = []string{"plan", "planning", "travel", "traveling", "travelling"}
	destinationPrepositions = []string{"to", "towards"}
	transactionKeywords     = []string{"buy", "pay", "payment", "book", "booking", "pass", "purchase"}
)

// Rule names, surfaced in Decision.Rule for diagnostics.
const (
	RuleStructuredKey = "structured_key"
	RuleLookupKeyword = "lookup_keyword"
	RuleForwardPlan   = "forward_planning"
	RuleTransaction   = "transaction_keyword"
	RuleDefault       = "default_retrieval"
)
