package enka

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/rs/zerolog"
)

// errTrailingData is returned when a body holds more than one JSON value.
var errTrailingData = errors.New("unexpected data after top-level value")

// decodeStrict decodes exactly one JSON value from data into v, rejecting
// object keys that v does not declare and objects that leave out a
// required one.
//
// The flag does not cross a json.Unmarshaler boundary, so every custom
// UnmarshalJSON in this package that fills a strict shape calls back into
// decodeStrict for its own payload.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errTrailingData
	}
	return checkRequired(data, reflect.TypeOf(v))
}

// decodeResponse decodes a success body into T.
//
// A failed decode is followed by a throwaway generic parse of the same
// body so the payload can be logged in readable form; the error returned
// is always the one from the typed decode.
func decodeResponse[T any](logger zerolog.Logger, endpoint string, body []byte) (T, error) {
	var out T
	err := decodeStrict(body, &out)
	if err == nil {
		return out, nil
	}

	target := fmt.Sprintf("%T", out)
	event := logger.Error().
		Err(err).
		Str("endpoint", endpoint).
		Str("target", target)
	if dump, ok := prettyJSON(body); ok {
		event.Str("payload", dump).Msg("Response does not match the expected shape")
	} else {
		event.Str("body", string(body)).Msg("Invalid JSON response")
	}

	var zero T
	return zero, &DecodeError{Target: target, Err: err}
}

// prettyJSON re-parses body as a generic value and renders it indented.
func prettyJSON(body []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", false
	}
	return string(pretty), true
}
