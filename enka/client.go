package enka

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Client binds a transport and header configuration so the fetch
// functions can be called as methods. A Client is safe for concurrent use.
type Client struct {
	opts options
}

// NewClient creates a new enka client
func NewClient(opts ...Option) *Client {
	return &Client{opts: newOptions(opts)}
}

// UserAgent returns the User-Agent every request of this client carries
func (c *Client) UserAgent() string {
	if c.opts.userAgent != "" {
		return c.opts.userAgent
	}
	return DefaultUserAgent()
}

// GetPlayer fetches the showcase of a game UID, see GetPlayer
func (c *Client) GetPlayer(ctx context.Context, uid uint64, infoOnly bool) (*Player, []AvatarInfo, error) {
	return getPlayer(ctx, c.opts, uid, infoOnly)
}

// GetProfile fetches an enka.network account by username
func (c *Client) GetProfile(ctx context.Context, username string) (*Profile, error) {
	return getProfile(ctx, c.opts, username)
}

// GetHoyos fetches every game account linked to a profile
func (c *Client) GetHoyos(ctx context.Context, username string) (map[Hash]Hoyo, error) {
	return getHoyos(ctx, c.opts, username)
}

// GetHoyo fetches one linked game account
func (c *Client) GetHoyo(ctx context.Context, username string, hash Hash) (*Hoyo, error) {
	return getHoyo(ctx, c.opts, username, hash)
}

// GetBuilds fetches the saved builds of a game account
func (c *Client) GetBuilds(ctx context.Context, username string, hash Hash) (map[AvatarID][]Build, error) {
	return getBuilds(ctx, c.opts, username, hash)
}

// GetBuild fetches a single saved build
func (c *Client) GetBuild(ctx context.Context, username string, hash Hash, buildID uint64) (*Build, error) {
	return getBuild(ctx, c.opts, username, hash, buildID)
}

// GetGenshinBuilds lists the hoyos of a profile and fetches the builds of
// every Genshin account among them, keyed by hoyo hash. Accounts of other
// games are skipped. The first failing request cancels the others.
func (c *Client) GetGenshinBuilds(ctx context.Context, username string) (map[Hash]map[AvatarID][]Build, error) {
	hoyos, err := c.GetHoyos(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list hoyos: %w", err)
	}

	result := make(map[Hash]map[AvatarID][]Build)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.concurrency)

	for hash, hoyo := range hoyos {
		if !hoyo.IsGenshin() {
			c.opts.logger.Debug().
				Str("hash", hash).
				Stringer("kind", hoyo.Kind).
				Msg("Skipping non-Genshin hoyo")
			continue
		}

		g.Go(func() error {
			builds, err := c.GetBuilds(ctx, username, hash)
			if err != nil {
				return fmt.Errorf("failed to get builds of hoyo %s: %w", hash, err)
			}

			mu.Lock()
			result[hash] = builds
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.opts.logger.Debug().
		Str("username", username).
		Int("hoyos", len(result)).
		Msg("Retrieved Genshin builds")
	return result, nil
}
