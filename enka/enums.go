package enka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// TextMapHash keys a localized string. Current payloads send a string,
// builds saved long ago may still hold a number.
type TextMapHash struct {
	Text     string
	Number   uint64
	IsNumber bool
}

func (h TextMapHash) String() string {
	if h.IsNumber {
		return strconv.FormatUint(h.Number, 10)
	}
	return h.Text
}

func (h *TextMapHash) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &UnknownVariantError{Union: "TextMapHash", Tag: "null"}
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = TextMapHash{Text: s}
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*h = TextMapHash{Number: n, IsNumber: true}
		return nil
	}
	return &UnknownVariantError{Union: "TextMapHash", Tag: string(data)}
}

func (h TextMapHash) MarshalJSON() ([]byte, error) {
	if h.IsNumber {
		return json.Marshal(h.Number)
	}
	return json.Marshal(h.Text)
}

// ProfilePicture is sent as a single-key object: {"avatarId": n} on older
// accounts, {"id": n} since profile pictures became their own items.
type ProfilePicture struct {
	AvatarID *AvatarID
	ID       *ProfilePictureID
}

func (p *ProfilePicture) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 1 {
		return fmt.Errorf("profilePicture: expected exactly one key, got %d", len(fields))
	}

	var out ProfilePicture
	for key, raw := range fields {
		var id uint64
		if err := decodeStrict(raw, &id); err != nil {
			return fmt.Errorf("profilePicture.%s: %w", key, err)
		}
		switch key {
		case "avatarId":
			out.AvatarID = &id
		case "id":
			out.ID = &id
		default:
			return &UnknownVariantError{Union: "ProfilePicture", Tag: key}
		}
	}
	*p = out
	return nil
}

func (p ProfilePicture) MarshalJSON() ([]byte, error) {
	switch {
	case p.AvatarID != nil:
		return json.Marshal(map[string]uint64{"avatarId": *p.AvatarID})
	case p.ID != nil:
		return json.Marshal(map[string]uint64{"id": *p.ID})
	}
	return nil, errors.New("enka: empty ProfilePicture")
}

// Prop identifies an entry of AvatarInfo.PropMap.
type Prop uint32

const (
	PropExp                  Prop = 1001
	PropBreakLevel           Prop = 1002
	PropSatiationVal         Prop = 1003
	PropSatiationPenaltyTime Prop = 1004
	PropLevel                Prop = 4001
	PropMaxStamina           Prop = 10010
	PropMaxDiveStamina       Prop = 10049
)

var propNames = map[Prop]string{
	PropExp:                  "PROP_EXP",
	PropBreakLevel:           "PROP_BREAK_LEVEL",
	PropSatiationVal:         "PROP_SATIATION_VAL",
	PropSatiationPenaltyTime: "PROP_SATIATION_PENALTY_TIME",
	PropLevel:                "PROP_LEVEL",
	PropMaxStamina:           "PROP_MAX_STAMINA",
	PropMaxDiveStamina:       "PROP_MAX_DIVE_STAMINA",
}

func (p Prop) String() string {
	if name, ok := propNames[p]; ok {
		return name
	}
	return "PROP_" + strconv.FormatUint(uint64(p), 10)
}

func parseProp(s string) (Prop, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid prop %q: %w", s, err)
	}
	p := Prop(n)
	if _, ok := propNames[p]; !ok {
		return 0, &UnknownVariantError{Union: "Prop", Tag: s}
	}
	return p, nil
}

// UnmarshalJSON accepts the numeric form used in PropValue.Type, and the
// quoted form encoding/json hands over for PropMap keys.
func (p *Prop) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := parseProp(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText accepts the string form of a PropMap key.
func (p *Prop) UnmarshalText(text []byte) error {
	v, err := parseProp(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Region is the game server an account plays on.
type Region string

const (
	RegionInternal            Region = ""
	RegionCelestia            Region = "CN"
	RegionIrminsul            Region = "B"
	RegionAmerica             Region = "NA"
	RegionEurope              Region = "EU"
	RegionAsia                Region = "ASIA"
	RegionTaiwanHongKongMacao Region = "TW"
)

func (r *Region) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		return &UnknownVariantError{Union: "Region", Tag: "null"}
	}
	switch v := Region(*s); v {
	case RegionInternal, RegionCelestia, RegionIrminsul, RegionAmerica,
		RegionEurope, RegionAsia, RegionTaiwanHongKongMacao:
		*r = v
		return nil
	}
	return &UnknownVariantError{Union: "Region", Tag: *s}
}

// EquipType is the artifact slot reported in FlatReliquary.EquipType.
type EquipType string

const (
	EquipBracer   EquipType = "EQUIP_BRACER"
	EquipNecklace EquipType = "EQUIP_NECKLACE"
	EquipShoes    EquipType = "EQUIP_SHOES"
	EquipRing     EquipType = "EQUIP_RING"
	EquipDress    EquipType = "EQUIP_DRESS"
)
