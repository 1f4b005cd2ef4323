package enka

import (
	"context"
	"fmt"
	"io"
)

// fetchJSON performs one GET round trip against endpoint and decodes a
// success body into T. The response body is consumed once, into either
// the decoded value or an error.
func fetchJSON[T any](ctx context.Context, o options, endpoint string) (T, error) {
	var zero T

	req, err := newRequest(ctx, o.baseURL, endpoint, o.userAgent)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	o.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("Making enka API request")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	o.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Msg("Received enka API response")

	if !IsSuccess(resp.StatusCode) {
		body := errorBodyPlaceholder
		if b, err := io.ReadAll(resp.Body); err == nil {
			body = string(b)
		}
		apiErr := newAPIError(resp.StatusCode, body)
		o.logger.Error().
			Str("endpoint", endpoint).
			Int("status", apiErr.StatusCode).
			Str("message", apiErr.Message).
			Str("body", apiErr.Body).
			Msg("enka API request failed")
		return zero, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%w: failed to read response body: %w", ErrRequestFailed, err)
	}

	return decodeResponse[T](o.logger, endpoint, body)
}

func getPlayer(ctx context.Context, o options, uid uint64, infoOnly bool) (*Player, []AvatarInfo, error) {
	endpoint := playerEndpoint(uid, infoOnly)
	if infoOnly {
		player, err := fetchJSON[Player](ctx, o, endpoint)
		if err != nil {
			return nil, nil, err
		}
		return &player, nil, nil
	}

	resp, err := fetchJSON[playerResponse](ctx, o, endpoint)
	if err != nil {
		return nil, nil, err
	}
	return &resp.Player, resp.AvatarInfoList, nil
}

func getProfile(ctx context.Context, o options, username string) (*Profile, error) {
	profile, err := fetchJSON[Profile](ctx, o, profileEndpoint(username))
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func getHoyos(ctx context.Context, o options, username string) (map[Hash]Hoyo, error) {
	return fetchJSON[map[Hash]Hoyo](ctx, o, hoyosEndpoint(username))
}

func getHoyo(ctx context.Context, o options, username string, hash Hash) (*Hoyo, error) {
	hoyo, err := fetchJSON[Hoyo](ctx, o, hoyoEndpoint(username, hash))
	if err != nil {
		return nil, err
	}
	return &hoyo, nil
}

func getBuilds(ctx context.Context, o options, username string, hash Hash) (map[AvatarID][]Build, error) {
	return fetchJSON[map[AvatarID][]Build](ctx, o, buildsEndpoint(username, hash))
}

func getBuild(ctx context.Context, o options, username string, hash Hash, buildID uint64) (*Build, error) {
	build, err := fetchJSON[Build](ctx, o, buildEndpoint(username, hash, buildID))
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// GetPlayer fetches the showcase of a game UID.
//
// With infoOnly the lighter ?info record is requested and the returned
// avatar list is always nil. Otherwise the full record is decoded and the
// avatar list is whatever the player has made public, possibly nil.
func GetPlayer(ctx context.Context, uid uint64, infoOnly bool, opts ...Option) (*Player, []AvatarInfo, error) {
	return getPlayer(ctx, newOptions(opts), uid, infoOnly)
}

// GetProfile fetches an enka.network account by username.
func GetProfile(ctx context.Context, username string, opts ...Option) (*Profile, error) {
	return getProfile(ctx, newOptions(opts), username)
}

// GetHoyos fetches every game account linked to a profile, keyed by hash.
func GetHoyos(ctx context.Context, username string, opts ...Option) (map[Hash]Hoyo, error) {
	return getHoyos(ctx, newOptions(opts), username)
}

// GetHoyo fetches one linked game account.
func GetHoyo(ctx context.Context, username string, hash Hash, opts ...Option) (*Hoyo, error) {
	return getHoyo(ctx, newOptions(opts), username, hash)
}

// GetBuilds fetches the saved builds of a game account, grouped by character.
func GetBuilds(ctx context.Context, username string, hash Hash, opts ...Option) (map[AvatarID][]Build, error) {
	return getBuilds(ctx, newOptions(opts), username, hash)
}

// GetBuild fetches a single saved build.
func GetBuild(ctx context.Context, username string, hash Hash, buildID uint64, opts ...Option) (*Build, error) {
	return getBuild(ctx, newOptions(opts), username, hash, buildID)
}
