package enka

import (
	"encoding/json"
	"maps"
	"strconv"
)

// Identifier aliases used throughout the enka payloads
type (
	AvatarID         = uint64
	CostumeID        = uint64
	ItemID           = uint64
	NameCardID       = uint64
	ProfilePictureID = uint64
	SkillID          = uint64
	TalentID         = uint64
	// Hash identifies a hoyo account inside an enka profile
	Hash = string
)

// Player is the record served by /api/uid/{uid}/?info, and the common
// part of the full /api/uid/{uid}/ response.
type Player struct {
	PlayerInfo PlayerInfo `json:"playerInfo"`
	TTL        uint64     `json:"ttl"`
	UID        string     `json:"uid"`
	Owner      *Owner     `json:"owner,omitempty"`
}

// playerResponse is the full /api/uid/{uid}/ envelope
type playerResponse struct {
	AvatarInfoList []AvatarInfo `json:"avatarInfoList,omitempty"`
	Player
}

// Owner links a UID to the enka profile that verified it
type Owner struct {
	Hash Hash `json:"hash"`
	Profile
}

// Profile is an enka.network account, /api/profile/{username}/
type Profile struct {
	Username string         `json:"username"`
	Profile  ProfileDetails `json:"profile"`
	ID       uint64         `json:"id"`
}

// ProfileDetails holds the public part of an enka account
type ProfileDetails struct {
	Bio         string  `json:"bio"`
	Level       int64   `json:"level"`
	SignupState *uint8  `json:"signup_state,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"` // Patreon image
}

// GenshinHoyo is a Genshin Impact account linked to a profile
type GenshinHoyo struct {
	UID         *uint64             `json:"uid,omitempty"`
	UIDPublic   bool                `json:"uid_public"`
	Public      bool                `json:"public"`
	LivePublic  bool                `json:"live_public"`
	Verified    bool                `json:"verified"`
	PlayerInfo  PlayerInfo          `json:"player_info"`
	Hash        Hash                `json:"hash"`
	Region      Region              `json:"region"`
	Order       uint64              `json:"order"`
	AvatarOrder map[AvatarID]uint64 `json:"avatar_order,omitempty"`
	HoyoType    uint8               `json:"hoyo_type"`
}

// Build is a saved character showcase
type Build struct {
	ID         uint64     `json:"id"`
	Name       string     `json:"name"`
	AvatarID   string     `json:"avatar_id"` // an AvatarID, sent as a string
	AvatarData AvatarInfo `json:"avatar_data"`
	Order      uint64     `json:"order"`
	Live       bool       `json:"live"`
	Settings   Settings   `json:"settings"`
	Public     bool       `json:"public"`
	Image      *string    `json:"image,omitempty"`
	HoyoType   uint8      `json:"hoyo_type"`
	Hoyo       Hash       `json:"hoyo"`
}

// Settings is the card rendering configuration of a build. The site adds
// keys here freely, so unknown keys are kept in Extra instead of failing
// the decode.
type Settings struct {
	AdaptiveColor *bool           `json:"adaptiveColor,omitempty"`
	ArtSource     *string         `json:"artSource,omitempty"`
	Caption       *string         `json:"caption,omitempty"`
	HonkardWidth  *float64        `json:"honkardWidth,omitempty"`
	Transform     json.RawMessage `json:"transform,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var settingsKeys = map[string]bool{
	"adaptiveColor": true,
	"artSource":     true,
	"caption":       true,
	"honkardWidth":  true,
	"transform":     true,
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key := range settingsKeys {
		delete(all, key)
	}
	if len(all) > 0 {
		known.Extra = all
	}
	*s = Settings(known)
	return nil
}

func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings
	known, err := json.Marshal(plain(s))
	if err != nil || len(s.Extra) == 0 {
		return known, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	extra := maps.Clone(s.Extra)
	maps.Copy(extra, merged)
	return json.Marshal(extra)
}

// PlayerInfo is the in-game profile card
type PlayerInfo struct {
	Nickname             string           `json:"nickname"`
	Level                uint8            `json:"level"`
	Signature            *string          `json:"signature,omitempty"`
	WorldLevel           *uint8           `json:"worldLevel,omitempty"`
	NameCardID           NameCardID       `json:"nameCardId"`
	FinishAchievementNum uint64           `json:"finishAchievementNum"`
	TowerFloorIndex      *uint8           `json:"towerFloorIndex,omitempty"`
	TowerLevelIndex      *uint8           `json:"towerLevelIndex,omitempty"`
	TowerStarIndex       *uint8           `json:"towerStarIndex,omitempty"`
	TheaterModeIndex     *uint8           `json:"theaterModeIndex,omitempty"`
	TheaterActIndex      *uint8           `json:"theaterActIndex,omitempty"`
	TheaterStarIndex     *uint8           `json:"theaterStarIndex,omitempty"`
	IsShowAvatarTalent   *bool            `json:"isShowAvatarTalent,omitempty"`
	ShowAvatarInfoList   []ShowAvatarInfo `json:"showAvatarInfoList,omitempty"`
	ShowNameCardIDList   []NameCardID     `json:"showNameCardIdList,omitempty"`
	ProfilePicture       ProfilePicture   `json:"profilePicture"`
	FetterCount          *uint8           `json:"fetterCount,omitempty"`
}

// ShowAvatarInfo is a character shown on the profile card
type ShowAvatarInfo struct {
	AvatarID    AvatarID   `json:"avatarId"`
	Level       uint8      `json:"level"`
	EnergyType  *uint8     `json:"energyType,omitempty"`
	CostumeID   *CostumeID `json:"costumeId,omitempty"`
	TalentLevel *uint8     `json:"talentLevel,omitempty"`
}

// AvatarInfo is the full showcase data of one character
type AvatarInfo struct {
	AvatarID                AvatarID           `json:"avatarId"`
	PropMap                 map[Prop]PropValue `json:"propMap"`
	TalentIDList            []TalentID         `json:"talentIdList,omitempty"`
	FightPropMap            map[uint32]float64 `json:"fightPropMap"`
	SkillDepotID            SkillID            `json:"skillDepotId"`
	InherentProudSkillList  []SkillID          `json:"inherentProudSkillList"`
	SkillLevelMap           map[uint64]uint64  `json:"skillLevelMap"`
	ProudSkillExtraLevelMap map[uint64]uint64  `json:"proudSkillExtraLevelMap,omitempty"`
	EquipList               []Equip            `json:"equipList"`
	FetterInfo              *FetterInfo        `json:"fetterInfo,omitempty"`
	CostumeID               *CostumeID         `json:"costumeId,omitempty"`
}

// Level returns the character level from PropMap, 0 when absent
func (a AvatarInfo) Level() uint64 {
	return a.PropMap[PropLevel].uint()
}

// Ascension returns the ascension phase from PropMap, 0 when absent
func (a AvatarInfo) Ascension() uint64 {
	return a.PropMap[PropBreakLevel].uint()
}

// Weapon returns the equipped weapon, nil when the payload lists none
func (a AvatarInfo) Weapon() *EquipWeapon {
	for _, e := range a.EquipList {
		if e.Weapon != nil {
			return e.Weapon
		}
	}
	return nil
}

// FetterInfo holds the friendship level of a character
type FetterInfo struct {
	ExpLevel uint8 `json:"expLevel"`
}

// PropValue is one entry of AvatarInfo.PropMap
type PropValue struct {
	Type Prop    `json:"type"`
	Ival *string `json:"ival,omitempty"`
	Val  *string `json:"val,omitempty"`
}

func (p PropValue) uint() uint64 {
	if p.Val == nil {
		return 0
	}
	n, err := strconv.ParseUint(*p.Val, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// EquipWeapon is the Weapon variant of Equip
type EquipWeapon struct {
	ItemID ItemID     `json:"itemId"`
	Weapon Weapon     `json:"weapon"`
	Flat   FlatWeapon `json:"flat"`
}

// EquipReliquary is the artifact variant of Equip
type EquipReliquary struct {
	ItemID    ItemID        `json:"itemId"`
	Reliquary Reliquary     `json:"reliquary"`
	Flat      FlatReliquary `json:"flat"`
}

// Weapon holds the per-instance weapon state
type Weapon struct {
	Level        uint8             `json:"level"`
	PromoteLevel *uint8            `json:"promoteLevel,omitempty"`
	AffixMap     map[uint64]uint64 `json:"affixMap,omitempty"`
}

// Reliquary holds the per-instance artifact state
type Reliquary struct {
	Level            uint8    `json:"level"`
	Exp              *uint64  `json:"exp,omitempty"`
	MainPropID       uint32   `json:"mainPropId"`
	AppendPropIDList []uint32 `json:"appendPropIdList,omitempty"`
}

// FlatWeapon is the static weapon data enka resolves for display
type FlatWeapon struct {
	NameTextMapHash TextMapHash `json:"nameTextMapHash"`
	RankLevel       uint8       `json:"rankLevel"`
	ItemType        string      `json:"itemType"`
	Icon            string      `json:"icon"`
	WeaponStats     []SubStat   `json:"weaponStats"`
}

// FlatReliquary is the static artifact data enka resolves for display
type FlatReliquary struct {
	NameTextMapHash    TextMapHash `json:"nameTextMapHash"`
	SetNameTextMapHash TextMapHash `json:"setNameTextMapHash"`
	RankLevel          uint8       `json:"rankLevel"`
	ReliquaryMainstat  MainStat    `json:"reliquaryMainstat"`
	ReliquarySubstats  []SubStat   `json:"reliquarySubstats,omitempty"`
	ItemType           string      `json:"itemType"`
	Icon               string      `json:"icon"`
	EquipType          EquipType   `json:"equipType"`
}

// MainStat is an artifact main stat
type MainStat struct {
	MainPropID string  `json:"mainPropId"`
	StatValue  float64 `json:"statValue"`
}

// SubStat is an artifact sub stat or a weapon stat
type SubStat struct {
	AppendPropID string  `json:"appendPropId"`
	StatValue    float64 `json:"statValue"`
}
