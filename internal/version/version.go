package version

// Set at build time with -ldflags "-X bwgraph/internal/version.VERSION=..."
var (
	VERSION = "dev"
	COMMIT  = "none"
)
