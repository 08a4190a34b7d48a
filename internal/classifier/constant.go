package classifier

// Log prefixes
const (
	logPrefixLoad = "internal.classifier.Load"
)
