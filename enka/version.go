package enka

import (
	"runtime/debug"
	"sync"
)

// LibraryName prefixes the default User-Agent
const LibraryName = "enka-go"

// Version is the build identifier sent in the default User-Agent.
// Release builds set it with -ldflags "-X github.com/s0up4200/enka/enka.Version=...";
// otherwise the VCS revision recorded by the toolchain is used.
var Version = ""

var buildID = sync.OnceValue(func() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if dirty {
		revision += "-dirty"
	}
	return revision
})

// BuildID returns the identifier embedded in DefaultUserAgent
func BuildID() string {
	return buildID()
}

// DefaultUserAgent returns "enka-go/<build identifier>"
func DefaultUserAgent() string {
	return LibraryName + "/" + BuildID()
}
