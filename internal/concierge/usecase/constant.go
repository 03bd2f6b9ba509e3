package usecase

const (
	scoutEmptyPrompt   = "Scout: What can I help you find? Tell me your terminal and what you're looking for."
	scoutContextPrompt = "Scout: Got it, you're at %s. Which terminal are you in, and what are you looking for?"
	scoutListingHeader = "Scout: Here are the top options at %s:\n\n"
	scoutNotFound      = "Scout: I couldn't find anything matching '%s' at %s."
	scoutPersona       = "You are LayoverOS, a helpful airport concierge at %s. " +
		"Answer the user's request based ONLY on the provided amenities context. " +
		"Keep it short, friendly, and helpful. Mention the location (terminal) and status (open/closed)."
	scoutUserPrompt = "User Request: %s\n\nContext Options:\n%s"

	flightClarify  = "FlightTracker: Please provide a valid flight number (e.g., UA450)."
	flightNotFound = "FlightTracker: I couldn't find flight %s in our database."
	flightTemplate = "FlightTracker: Flight %s to %s\nStatus: %s\nGate: %s"
	flightPersona  = "You are a Flight Tracker. Inform the user about their flight status clearly."
	flightPrompt   = "Flight: %s to %s. Status: %s. Gate: %s.\nUser asked: %s"

	// ActionRequiredToken tells the presentation layer to open the payment flow.
	ActionRequiredToken = "[ACTION_REQUIRED]"
	bursarReply         = "Bursar: " + ActionRequiredToken + " Lounge pass selected. Complete the $50 USDC payment to unlock access."

	defaultStatus      = "Unknown"
	defaultGate        = "TBD"
	defaultDestination = "Unknown"
	generalArea        = "General Area"
	noDescription      = "No description"

	contextSettingMaxTokens = 5
	generationTemperature   = 0.3
	generationMaxTokens     = 512
)

var locativePrepositions = []string{"at", "in", "near", "by"}
