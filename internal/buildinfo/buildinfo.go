package buildinfo

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-ldflags "-X vecmath/internal/buildinfo.Version=v0.2.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and HUD.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Long returns version, commit and build date on one line.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
