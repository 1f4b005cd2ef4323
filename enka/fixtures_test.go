package enka

const playerInfoJSON = `{
	"nickname": "Algoinde",
	"level": 60,
	"signature": "enka.network",
	"worldLevel": 8,
	"nameCardId": 210051,
	"finishAchievementNum": 1000,
	"towerFloorIndex": 12,
	"towerLevelIndex": 3,
	"towerStarIndex": 36,
	"showAvatarInfoList": [{"avatarId": 10000002, "level": 90, "energyType": 4}],
	"showNameCardIdList": [210051],
	"profilePicture": {"id": 1}
}`

const weaponJSON = `{
	"itemId": 11509,
	"weapon": {"level": 90, "promoteLevel": 6, "affixMap": {"111509": 0}},
	"flat": {
		"nameTextMapHash": "1075647299",
		"rankLevel": 5,
		"itemType": "ITEM_WEAPON",
		"icon": "UI_EquipIcon_Sword_Narukami",
		"weaponStats": [
			{"appendPropId": "FIGHT_PROP_BASE_ATTACK", "statValue": 674},
			{"appendPropId": "FIGHT_PROP_CRITICAL", "statValue": 22.1}
		]
	}
}`

const reliquaryJSON = `{
	"itemId": 77544,
	"reliquary": {"level": 21, "mainPropId": 14001, "appendPropIdList": [501204, 501054]},
	"flat": {
		"nameTextMapHash": "4220321810",
		"setNameTextMapHash": 1524173875,
		"rankLevel": 5,
		"reliquaryMainstat": {"mainPropId": "FIGHT_PROP_HP", "statValue": 4780},
		"reliquarySubstats": [{"appendPropId": "FIGHT_PROP_CRITICAL", "statValue": 7.4}],
		"itemType": "ITEM_RELIQUARY",
		"icon": "UI_RelicIcon_15020_4",
		"equipType": "EQUIP_BRACER"
	}
}`

const avatarJSON = `{
	"avatarId": 10000002,
	"propMap": {
		"4001": {"type": 4001, "ival": "90", "val": "90"},
		"1002": {"type": 1002, "ival": "6", "val": "6"}
	},
	"talentIdList": [21, 22],
	"fightPropMap": {"1": 12858, "2000": 20991.5},
	"skillDepotId": 201,
	"inherentProudSkillList": [22101, 22301],
	"skillLevelMap": {"10024": 9, "10018": 10},
	"equipList": [` + weaponJSON + `, ` + reliquaryJSON + `],
	"fetterInfo": {"expLevel": 10}
}`

const ownerJSON = `{
	"hash": "4Wjv2e",
	"username": "Algoinde",
	"profile": {"bio": "", "level": 1, "signup_state": 3},
	"id": 3
}`

const playerInfoOnlyJSON = `{
	"playerInfo": ` + playerInfoJSON + `,
	"ttl": 60,
	"uid": "618285856",
	"owner": ` + ownerJSON + `
}`

const playerFullJSON = `{
	"avatarInfoList": [` + avatarJSON + `],
	"playerInfo": ` + playerInfoJSON + `,
	"ttl": 60,
	"uid": "618285856"
}`

const profileJSON = `{
	"username": "Algoinde",
	"profile": {"bio": "hi", "level": 5, "signup_state": 3, "image_url": "https://cdn.enka.network/a.png"},
	"id": 3
}`

const genshinHoyoJSON = `{
	"uid": 618285856,
	"uid_public": true,
	"public": true,
	"live_public": false,
	"verified": true,
	"player_info": ` + playerInfoJSON + `,
	"hash": "4Wjv2e",
	"region": "EU",
	"order": 0,
	"avatar_order": {"10000002": 1},
	"hoyo_type": 0
}`

const starRailHoyoJSON = `{"uid": 700000001, "hash": "Hs1rQ", "hoyo_type": 1, "player_info": {"nickname": "Trailblazer", "unmodelled": true}}`

const zenlessHoyoJSON = `{"hash": "Zz9", "hoyo_type": 2}`

const hoyosJSON = `{
	"4Wjv2e": ` + genshinHoyoJSON + `,
	"Hs1rQ": ` + starRailHoyoJSON + `
}`

const buildJSON = `{
	"id": 42,
	"name": "DPS",
	"avatar_id": "10000002",
	"avatar_data": ` + avatarJSON + `,
	"order": 1,
	"live": false,
	"settings": {"caption": "Freeze team", "adaptiveColor": true, "transform": {"x": 1}, "cardTheme": "dark"},
	"public": true,
	"image": null,
	"hoyo_type": 0,
	"hoyo": "4Wjv2e"
}`

const buildsJSON = `{"10000002": [` + buildJSON + `]}`

func ptr[T any](v T) *T {
	return &v
}

// expectedPlayerInfo mirrors playerInfoJSON
func expectedPlayerInfo() PlayerInfo {
	return PlayerInfo{
		Nickname:             "Algoinde",
		Level:                60,
		Signature:            ptr("enka.network"),
		WorldLevel:           ptr[uint8](8),
		NameCardID:           210051,
		FinishAchievementNum: 1000,
		TowerFloorIndex:      ptr[uint8](12),
		TowerLevelIndex:      ptr[uint8](3),
		TowerStarIndex:       ptr[uint8](36),
		ShowAvatarInfoList: []ShowAvatarInfo{
			{AvatarID: 10000002, Level: 90, EnergyType: ptr[uint8](4)},
		},
		ShowNameCardIDList: []NameCardID{210051},
		ProfilePicture:     ProfilePicture{ID: ptr[uint64](1)},
	}
}

// expectedOwner mirrors ownerJSON
func expectedOwner() *Owner {
	return &Owner{
		Hash: "4Wjv2e",
		Profile: Profile{
			Username: "Algoinde",
			Profile:  ProfileDetails{Bio: "", Level: 1, SignupState: ptr[uint8](3)},
			ID:       3,
		},
	}
}
