// Package buildinfo carries version metadata stamped in with -ldflags:
//
//	-X nanoshader/internal/buildinfo.Version=v0.2.0 -X nanoshader/internal/buildinfo.Commit=$(git rev-parse --short HEAD)
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and boot logs.
func Short() string {
	hasVersion := Version != "" && Version != "dev"
	hasCommit := Commit != "" && Commit != "unknown"
	switch {
	case hasVersion && hasCommit:
		return Version + "+" + Commit
	case hasVersion:
		return Version
	case hasCommit:
		return Commit
	}
	return "dev"
}
