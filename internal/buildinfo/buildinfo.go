// Package buildinfo carries the release stamp set with -ldflags -X.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns "inputhistory <short> (<commit>, <date>)".
func String() string {
	return "inputhistory " + Short() + " (" + Commit + ", " + Date + ")"
}
