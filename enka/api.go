package enka

import (
	"context"
)

// API defines the interface for enka.network operations
type API interface {
	// GetPlayer fetches a UID showcase, info only or with avatars
	GetPlayer(ctx context.Context, uid uint64, infoOnly bool) (*Player, []AvatarInfo, error)

	// GetProfile fetches an enka.network account
	GetProfile(ctx context.Context, username string) (*Profile, error)

	// GetHoyos fetches the game accounts linked to a profile
	GetHoyos(ctx context.Context, username string) (map[Hash]Hoyo, error)

	// GetHoyo fetches one linked game account
	GetHoyo(ctx context.Context, username string, hash Hash) (*Hoyo, error)

	// GetBuilds fetches the saved builds of a game account
	GetBuilds(ctx context.Context, username string, hash Hash) (map[AvatarID][]Build, error)

	// GetBuild fetches one saved build
	GetBuild(ctx context.Context, username string, hash Hash, buildID uint64) (*Build, error)

	// GetGenshinBuilds fetches the builds of every Genshin account of a profile
	GetGenshinBuilds(ctx context.Context, username string) (map[Hash]map[AvatarID][]Build, error)
}

var _ API = (*Client)(nil)
