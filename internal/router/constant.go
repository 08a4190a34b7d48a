package router

// Log prefixes
const (
	LogPrefixRoute      = "internal.router.Route"
	LogPrefixSetAlgo    = "internal.router.SetPreferredAlgo"
	LogPrefixReset      = "internal.router.Reset"
	LogPrefixClassifier = "internal.router.classify"
)

// Routing configuration
const (
	DefaultThreshold = 0.50
	EmptyConfidence  = 0.0
)

// Route sources
const (
	SourceEmpty         = "empty"
	SourceReservation   = "reservation"
	SourcePriceFollowUp = "price_followup"
	SourceClassifier    = "classifier"
	sourceRulePrefix    = "rule:"
)
