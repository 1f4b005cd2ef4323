package enka

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
	"strings"
)

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// checkRequired walks raw alongside t and reports the first object that
// leaves out a required key. A field is optional when its json tag carries
// omitempty; a required key holding null counts as missing.
//
// Types with their own UnmarshalJSON are not entered, they run
// decodeStrict on their own payload.
func checkRequired(raw json.RawMessage, t reflect.Type) error {
	if t == nil {
		return nil
	}
	t = derefType(t)
	if isNull(raw) || !mayRequire(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		return checkObject(obj, t)
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		for _, item := range items {
			if err := checkRequired(item, t.Elem()); err != nil {
				return err
			}
		}
	case reflect.Map:
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil
		}
		for _, entry := range entries {
			if err := checkRequired(entry, t.Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkObject checks the keys of one object against the fields of t.
// Embedded structs without a json name share the object, as they do
// when encoding/json decodes it.
func checkObject(obj map[string]json.RawMessage, t reflect.Type) error {
	for i := range t.NumField() {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}

		if f.Anonymous && name == "" {
			if embedded := derefType(f.Type); embedded.Kind() == reflect.Struct {
				if err := checkObject(obj, embedded); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		v, ok := obj[name]
		if !ok || isNull(v) {
			if slices.Contains(strings.Split(opts, ","), "omitempty") {
				continue
			}
			return &MissingFieldError{Shape: t.Name(), Field: name}
		}
		if err := checkRequired(v, f.Type); err != nil {
			return err
		}
	}
	return nil
}

// mayRequire reports whether a value of type t can hold an object with
// required keys that checkRequired has to look at.
func mayRequire(t reflect.Type) bool {
	t = derefType(t)
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice, reflect.Array, reflect.Map:
		return mayRequire(t.Elem())
	}
	return false
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
