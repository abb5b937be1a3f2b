package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/aalvaropc/mathsheets/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("mathsheets %s (commit=%s, date=%s)", Version, Commit, Date)
}
