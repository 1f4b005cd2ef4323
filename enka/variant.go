package enka

import (
	"encoding/json"
	"errors"
	"strconv"
)

// variantResolver decodes a union whose discriminator is not something
// encoding/json can dispatch on by itself. probe pulls the tag out of the
// raw value; the decoder registered under that tag then decodes the whole
// raw value, not just the part after the tag.
type variantResolver[T any] struct {
	union    string
	probe    func(raw []byte) string
	variants map[string]func(raw []byte, out *T) error
}

func (r *variantResolver[T]) resolve(raw []byte, out *T) error {
	tag := r.probe(raw)
	decode, ok := r.variants[tag]
	if !ok {
		return &UnknownVariantError{Union: r.union, Tag: tag}
	}
	return decode(raw, out)
}

// objectField returns the raw value stored under key when raw is a JSON object.
func objectField(raw []byte, key string) (json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	v, ok := fields[key]
	return v, ok
}

// HoyoKind is the game a linked account belongs to, as sent in hoyo_type.
//
// Only HoyoKindGenshin is modelled. The meaning of 1 and 2 is inferred,
// enka does not document the field.
type HoyoKind uint8

const (
	HoyoKindGenshin  HoyoKind = 0
	HoyoKindStarRail HoyoKind = 1
	HoyoKindZenless  HoyoKind = 2
)

func (k HoyoKind) String() string {
	switch k {
	case HoyoKindGenshin:
		return "genshin"
	case HoyoKindStarRail:
		return "starrail"
	case HoyoKindZenless:
		return "zenless"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Hoyo is one game account linked to an enka profile.
//
// Genshin is set for HoyoKindGenshin. For the other known kinds Raw keeps
// the payload exactly as received.
type Hoyo struct {
	Kind    HoyoKind
	Genshin *GenshinHoyo
	Raw     json.RawMessage
}

// IsGenshin reports whether the account is a fully decoded Genshin account
func (h Hoyo) IsGenshin() bool {
	return h.Genshin != nil
}

var hoyoResolver = variantResolver[Hoyo]{
	union: "Hoyo",
	probe: func(raw []byte) string {
		v, ok := objectField(raw, "hoyo_type")
		if !ok {
			return ""
		}
		kind, err := strconv.ParseUint(string(v), 10, 64)
		if err != nil {
			return string(v)
		}
		return strconv.FormatUint(kind, 10)
	},
	variants: map[string]func([]byte, *Hoyo) error{
		"0": func(raw []byte, out *Hoyo) error {
			var g GenshinHoyo
			if err := decodeStrict(raw, &g); err != nil {
				return err
			}
			*out = Hoyo{Kind: HoyoKindGenshin, Genshin: &g}
			return nil
		},
		"1": opaqueHoyo(HoyoKindStarRail),
		"2": opaqueHoyo(HoyoKindZenless),
	},
}

func opaqueHoyo(kind HoyoKind) func([]byte, *Hoyo) error {
	return func(raw []byte, out *Hoyo) error {
		*out = Hoyo{Kind: kind, Raw: append(json.RawMessage(nil), raw...)}
		return nil
	}
}

func (h *Hoyo) UnmarshalJSON(data []byte) error {
	var out Hoyo
	if err := hoyoResolver.resolve(data, &out); err != nil {
		return err
	}
	*h = out
	return nil
}

func (h Hoyo) MarshalJSON() ([]byte, error) {
	switch {
	case h.Genshin != nil:
		return json.Marshal(h.Genshin)
	case h.Raw != nil:
		return h.Raw, nil
	}
	return nil, errors.New("enka: empty Hoyo")
}

// Item types carried in flat.itemType
const (
	ItemWeapon    = "ITEM_WEAPON"
	ItemReliquary = "ITEM_RELIQUARY"
)

// Equip is one item equipped by a character: either a weapon or an artifact.
type Equip struct {
	Weapon    *EquipWeapon
	Reliquary *EquipReliquary
}

// ItemType returns the flat.itemType the item was decoded from
func (e Equip) ItemType() string {
	switch {
	case e.Weapon != nil:
		return ItemWeapon
	case e.Reliquary != nil:
		return ItemReliquary
	}
	return ""
}

var equipResolver = variantResolver[Equip]{
	union: "Equip",
	probe: func(raw []byte) string {
		flat, ok := objectField(raw, "flat")
		if !ok {
			return ""
		}
		v, ok := objectField(flat, "itemType")
		if !ok {
			return ""
		}
		var itemType string
		if err := json.Unmarshal(v, &itemType); err != nil {
			return ""
		}
		return itemType
	},
	variants: map[string]func([]byte, *Equip) error{
		ItemWeapon: func(raw []byte, out *Equip) error {
			var w EquipWeapon
			if err := decodeStrict(raw, &w); err != nil {
				return err
			}
			*out = Equip{Weapon: &w}
			return nil
		},
		ItemReliquary: func(raw []byte, out *Equip) error {
			var r EquipReliquary
			if err := decodeStrict(raw, &r); err != nil {
				return err
			}
			*out = Equip{Reliquary: &r}
			return nil
		},
	},
}

func (e *Equip) UnmarshalJSON(data []byte) error {
	var out Equip
	if err := equipResolver.resolve(data, &out); err != nil {
		return err
	}
	*e = out
	return nil
}

func (e Equip) MarshalJSON() ([]byte, error) {
	switch {
	case e.Weapon != nil:
		return json.Marshal(e.Weapon)
	case e.Reliquary != nil:
		return json.Marshal(e.Reliquary)
	}
	return nil, errors.New("enka: empty Equip")
}
