// Package enka provides a client for the enka.network JSON API.
//
// enka.network mirrors Genshin Impact character showcases and lets users
// link game accounts ("hoyos") and save builds to a profile. This package
// fetches those records and decodes them into typed values.
//
// # Usage
//
// Every endpoint is available as a free function taking functional options:
//
//	player, avatars, err := enka.GetPlayer(ctx, 618285856, false,
//		enka.WithUserAgent("my-bot/1.0"),
//	)
//
// or as a method of a Client that keeps the options:
//
//	client := enka.NewClient(
//		enka.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
//		enka.WithLogger(logger),
//	)
//	hoyos, err := client.GetHoyos(ctx, "Algoinde")
//
// Identifiers are inserted into request paths verbatim; escape usernames
// with url.PathEscape before passing them in.
//
// # Decoding
//
// Responses are decoded strictly: a field the model does not declare fails
// the decode with ErrDecode, so changes to the upstream payloads surface
// immediately. Two payloads are unions that encoding/json cannot dispatch
// by itself and are resolved by looking at a discriminator first:
//
//   - Hoyo: hoyo_type 0 decodes into GenshinHoyo, 1 and 2 keep the raw
//     payload in Hoyo.Raw, anything else is ErrUnknownVariant.
//   - Equip: flat.itemType ITEM_WEAPON or ITEM_RELIQUARY selects
//     EquipWeapon or EquipReliquary, anything else is ErrUnknownVariant.
//
// Build settings are the one open-ended shape: unknown keys end up in
// Settings.Extra.
//
// # Error Handling
//
// Every error belongs to one of three classes, tested with errors.Is:
//
//   - ErrRequestFailed: the request could not be sent or read
//   - ErrStatus: a non-2xx answer, as *APIError with the classified message
//   - ErrDecode: the body did not fit the model, as *DecodeError
//     (additionally ErrInvalidJSON when it was not JSON, ErrUnknownVariant
//     when a union tag was not recognised)
//
// Nothing is retried, including 429 answers:
//
//	var apiErr *enka.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
//		// back off
//	}
package enka
