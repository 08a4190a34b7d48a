package matcher

const (
	// DefaultLimit is the number of dishes returned when the caller has no preference.
	DefaultLimit = 6

	scoreExactName = 100.0
	scoreTag       = 100.0
	scoreAlias     = 99.0
	// approxFloor is the minimum similarity an approximate name hit needs.
	approxFloor = 60.0
	// approxFanout scales limit into the number of candidates each scorer yields.
	approxFanout = 3
)
