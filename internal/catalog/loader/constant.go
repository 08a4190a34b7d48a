package loader

// Log prefixes
const (
	logPrefixLoad = "internal.catalog.loader.Load"
)
