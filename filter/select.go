package filter

import (
	"github.com/s0up4200/enka/enka"
)

// Select returns the builds f matches, in input order.
func Select(f Filter, builds []enka.Build) []enka.Build {
	matches := make([]enka.Build, 0, len(builds))
	for _, build := range builds {
		if f.Evaluate(build) {
			matches = append(matches, build)
		}
	}
	return matches
}

// SelectGrouped applies Select to every character of a builds listing.
// Characters left without a match are dropped.
func SelectGrouped(f Filter, builds map[enka.AvatarID][]enka.Build) map[enka.AvatarID][]enka.Build {
	out := make(map[enka.AvatarID][]enka.Build, len(builds))
	for avatarID, list := range builds {
		if matches := Select(f, list); len(matches) > 0 {
			out[avatarID] = matches
		}
	}
	return out
}
